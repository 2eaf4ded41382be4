// Package mood turns free-text mood descriptions into ranked genre lists.
//
// Resolution prefers an external classifier and falls back to a local,
// deterministic keyword analysis so that every mood resolves to at least one
// genre.
package mood

// Mood keys of the lexicon.
const (
	Happy      = "happy"
	Sad        = "sad"
	Excited    = "excited"
	Relaxed    = "relaxed"
	Stressed   = "stressed"
	Romantic   = "romantic"
	Mysterious = "mysterious"
	Dark       = "dark"
	Nostalgic  = "nostalgic"
	Inspired   = "inspired"
)

type lexiconEntry struct {
	mood   string
	genres []string
}

// lexicon maps moods to genres, most relevant first.
var lexicon = []lexiconEntry{
	{Happy, []string{"Comedy", "Feel-good", "Adventure", "Family", "Romance"}},
	{Sad, []string{"Drama", "Feel-good", "Romance", "Comedy", "Biography"}},
	{Excited, []string{"Action", "Adventure", "Science Fiction", "Thriller", "War"}},
	{Relaxed, []string{"Comedy", "Feel-good", "Adventure", "Family", "Romance"}},
	{Stressed, []string{"Comedy", "Feel-good", "Adventure", "Family", "Romance"}},
	{Romantic, []string{"Romance", "Drama", "Comedy", "Feel-good", "Musical"}},
	{Mysterious, []string{"Mystery", "Thriller", "Crime", "Psychological", "Horror"}},
	{Dark, []string{"Thriller", "Horror", "Crime", "Psychological", "Drama"}},
	{Nostalgic, []string{"Classic", "Drama", "Feel-good", "Adventure", "Biography"}},
	{Inspired, []string{"Drama", "Biography", "Adventure", "Epic", "Historical"}},
}

// GenresFor returns the ranked genres for a mood key, or nil for an unknown
// key. The returned slice is a copy.
func GenresFor(mood string) []string {
	for _, e := range lexicon {
		if e.mood == mood {
			out := make([]string, len(e.genres))
			copy(out, e.genres)
			return out
		}
	}
	return nil
}

// Moods returns the lexicon keys in declaration order.
func Moods() []string {
	out := make([]string, len(lexicon))
	for i, e := range lexicon {
		out[i] = e.mood
	}
	return out
}
