package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleTwiceIsEmpty(t *testing.T) {
	var s Set

	assert.True(t, s.Toggle("Comedy"))
	assert.False(t, s.Toggle("Comedy"))

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Snapshot())
	assert.False(t, s.Contains("Comedy"))
}

func TestSnapshotKeepsInsertionOrder(t *testing.T) {
	var s Set
	s.Toggle("War")
	s.Toggle("Action")
	s.Toggle("Drama")
	s.Toggle("Action")
	s.Toggle("Comedy")

	assert.Equal(t, []string{"War", "Drama", "Comedy"}, s.Snapshot())
	assert.True(t, s.Contains("Drama"))
	assert.False(t, s.Toggle("Drama"))
	assert.Equal(t, []string{"War", "Comedy"}, s.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	var s Set
	s.Toggle("Drama")

	snap := s.Snapshot()
	snap[0] = "changed"

	assert.Equal(t, []string{"Drama"}, s.Snapshot())
}

func TestUnknownGenreAccepted(t *testing.T) {
	var s Set

	assert.True(t, s.Toggle("Not A Genre"))
	assert.Equal(t, 1, s.Len())
}

func TestClear(t *testing.T) {
	var s Set
	s.Toggle("Drama")
	s.Toggle("War")

	s.Clear()

	assert.Zero(t, s.Len())
	assert.False(t, s.Contains("War"))
	assert.True(t, s.Toggle("War"))
}
