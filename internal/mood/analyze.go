package mood

import "strings"

// keywordGroup maps a set of trigger substrings to a lexicon mood.
type keywordGroup struct {
	mood     string
	triggers []string
}

// keywordGroups are tested in this order; the order decides ranking.
var keywordGroups = []keywordGroup{
	{Happy, []string{"happy", "joy", "excited", "good"}},
	{Excited, []string{"excited"}},
	{Sad, []string{"sad", "depressed", "down"}},
	{Romantic, []string{"romantic", "love", "romance"}},
	{Mysterious, []string{"mysterious", "mystery", "suspense"}},
	{Dark, []string{"dark", "scary", "horror"}},
	{Inspired, []string{"inspired", "motivated", "uplifting"}},
	{Relaxed, []string{"relaxed", "calm", "peaceful"}},
	{Stressed, []string{"stressed", "anxious", "worried"}},
}

// Analyze is the local fallback classification. Every keyword group with a
// trigger found in the lower-cased text contributes its whole genre list, in
// group order. With no match the happy list is used. The result is
// deduplicated, first occurrence wins.
//
// "excited" triggers both the happy and the excited group, so happy genres
// rank ahead of the action-heavy excited ones.
func Analyze(text string) []string {
	lower := strings.ToLower(text)

	var genres []string
	for _, g := range keywordGroups {
		if matchesAny(lower, g.triggers) {
			genres = append(genres, GenresFor(g.mood)...)
		}
	}
	if len(genres) == 0 {
		genres = GenresFor(Happy)
	}
	return Dedup(genres)
}

func matchesAny(text string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// Dedup removes repeated genres, keeping the first occurrence.
func Dedup(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
