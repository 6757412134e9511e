package textattr

import (
	"regexp"
	"strings"
)

// Kind is the capture flavor of an input, used for title defaults.
type Kind string

const (
	KindTask     Kind = "task"
	KindEvent    Kind = "event"
	KindReminder Kind = "reminder"
)

// commandPrefixes are leading command verbs stripped from the title.
// Ordered longest-first so "remind me to" wins over "remind me".
var commandPrefixes = []string{
	"please ",
	"set a reminder to ",
	"don't forget to ",
	"dont forget to ",
	"schedule a ",
	"schedule an ",
	"schedule ",
	"remind me to ",
	"remind me ",
	"add a task to ",
	"add a task ",
	"add task ",
	"create a task ",
	"create task ",
	"new task ",
	"i need to ",
	"todo ",
	"add ",
	"create ",
}

// reTitleCut marks the start of a trailing temporal/priority/attribute
// clause; the title is everything before the first match.
var reTitleCut = regexp.MustCompile(`\b(tomorrow|today|tonight|next\b|this (morning|afternoon|evening)|(?:on |this )?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|every\b|daily|weekly|monthly|urgent|asap|high priority|low priority|remind me|notify me|alert me|takes \d|will take|duration|at \d|in \d|for \d|\d{1,2}:\d{2}|\d{1,2}\s*(am|pm)\b)|#`)

// eventNoise are schedule-command nouns that name the record type rather
// than its subject ("schedule team meeting" titles as "team").
var eventNoise = map[string]bool{"meeting": true, "appointment": true, "event": true}

const minTitleLen = 3

// Title extracts the core task phrase: leading command verbs and trailing
// temporal/priority clauses are stripped, original casing is preserved.
// Too-short results fall back to a generic default for the capture kind.
func Title(text string, kind Kind) string {
	work := strings.TrimSpace(text)

	// Strip leading command verbs, repeating for stacked prefixes.
	for stripped := true; stripped; {
		stripped = false
		lower := strings.ToLower(work)
		for _, prefix := range commandPrefixes {
			if strings.HasPrefix(lower, prefix) {
				work = strings.TrimSpace(work[len(prefix):])
				stripped = true
				break
			}
		}
	}

	// Cut the trailing clause.
	if loc := reTitleCut.FindStringIndex(strings.ToLower(work)); loc != nil {
		work = work[:loc[0]]
	}
	work = strings.Trim(work, " \t,.-")

	if kind == KindEvent {
		var kept []string
		for _, tok := range strings.Fields(work) {
			if eventNoise[strings.ToLower(tok)] {
				continue
			}
			kept = append(kept, tok)
		}
		work = strings.Join(kept, " ")
	}

	if len(work) < minTitleLen {
		switch kind {
		case KindEvent:
			return "Meeting"
		case KindReminder:
			return "Reminder"
		default:
			return "New task"
		}
	}
	return work
}
