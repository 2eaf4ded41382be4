// Package pager splits a ranked result into fixed-size pages that are
// revealed incrementally.
package pager

import (
	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/filter"
)

// PageSize is the number of movies revealed per page.
const PageSize = 50

// Pager tracks how much of a result is visible. Pages are 1-based. The zero
// value holds an empty result on page 1.
type Pager struct {
	result filter.Result
	page   int
}

// New returns a Pager positioned on the first page of result.
func New(result filter.Result) *Pager {
	p := &Pager{}
	p.Reset(result)
	return p
}

// Reset replaces the result and returns to page 1.
func (p *Pager) Reset(result filter.Result) {
	p.result = result
	p.page = 1
}

// Page returns the current 1-based page index.
func (p *Pager) Page() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// CurrentPage returns the movies of the current page only.
func (p *Pager) CurrentPage() []catalog.Movie {
	start := (p.Page() - 1) * PageSize
	if start >= len(p.result.Movies) {
		return []catalog.Movie{}
	}
	end := min(start+PageSize, len(p.result.Movies))
	return p.result.Movies[start:end:end]
}

// HasMore reports whether another page exists after the current one.
func (p *Pager) HasMore() bool {
	return p.Page()*PageSize < len(p.result.Movies)
}

// Advance moves to the next page. It is a no-op returning false when there
// is no further page.
func (p *Pager) Advance() bool {
	if !p.HasMore() {
		return false
	}
	p.page = p.Page() + 1
	return true
}

// Result returns the whole result being paged.
func (p *Pager) Result() filter.Result {
	return p.result
}

// Total returns the size of the whole result.
func (p *Pager) Total() int {
	return len(p.result.Movies)
}
