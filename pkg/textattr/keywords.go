// Package textattr derives task attributes (priority, category, location,
// duration, reminder, tags, title) from free text. All keyword tables are
// immutable package-level data; matching is ordered and first-match-wins.
package textattr

import (
	"regexp"
	"strings"
)

// DefaultPriority is used when no priority keyword is present (medium).
const DefaultPriority = 3

// DefaultCategory is used when no category can be matched or inferred.
const DefaultCategory = "general"

// priorityKeywords maps keywords to priority 1 (most urgent) through 5.
var priorityKeywords = []struct {
	word  string
	value int
}{
	{"urgent", 1},
	{"asap", 1},
	{"high", 2},
	{"important", 2},
	{"medium", 3},
	{"normal", 3},
	{"low", 4},
	{"later", 5},
}

// categoryVocab is the fixed category vocabulary, matched directly.
var categoryVocab = []string{
	"work", "personal", "health", "finance", "shopping",
	"family", "travel", "home", "learning", "project",
}

// categoryHints infers a category from secondary keywords when the text
// does not name one directly.
var categoryHints = []struct {
	category string
	words    []string
}{
	{"work", []string{"meeting", "client", "presentation", "deadline", "interview", "report", "office"}},
	{"personal", []string{"grocery", "groceries", "doctor", "dentist", "birthday", "gym"}},
	{"home", []string{"clean", "laundry", "dishes", "repair", "garden"}},
	{"finance", []string{"bill", "bills", "invoice", "tax", "taxes", "budget"}},
	{"learning", []string{"study", "course", "read", "practice"}},
}

var wordBoundary = map[string]*regexp.Regexp{}

func init() {
	for _, p := range priorityKeywords {
		wordBoundary[p.word] = regexp.MustCompile(`\b` + p.word + `\b`)
	}
	for _, c := range categoryVocab {
		wordBoundary[c] = regexp.MustCompile(`\b` + c + `\b`)
	}
	for _, h := range categoryHints {
		for _, w := range h.words {
			wordBoundary[w] = regexp.MustCompile(`\b` + w + `\b`)
		}
	}
}

// Priority returns the priority implied by the first matching keyword,
// or DefaultPriority when none is present.
func Priority(text string) int {
	p, _ := PriorityFound(text)
	return p
}

// PriorityFound additionally reports whether a keyword was actually present,
// for callers that merge partial updates.
func PriorityFound(text string) (int, bool) {
	lower := strings.ToLower(text)
	for _, p := range priorityKeywords {
		if wordBoundary[p.word].MatchString(lower) {
			return p.value, true
		}
	}
	return DefaultPriority, false
}

// Category matches the fixed vocabulary first, then falls back to keyword
// inference, then to DefaultCategory.
func Category(text string) string {
	c, _ := CategoryFound(text)
	return c
}

// CategoryFound additionally reports whether a match or inference succeeded,
// for callers that merge partial updates.
func CategoryFound(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range categoryVocab {
		if wordBoundary[c].MatchString(lower) {
			return c, true
		}
	}
	for _, h := range categoryHints {
		for _, w := range h.words {
			if wordBoundary[w].MatchString(lower) {
				return h.category, true
			}
		}
	}
	return DefaultCategory, false
}
