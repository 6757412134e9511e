package timetext

import "time"

// TimeContext is the resolved half-open [Start, End) interval derived from a
// natural-language phrase.
type TimeContext struct {
	Start      time.Time
	End        time.Time
	SourceText string // the fragment of the input that produced the result
	HasClock   bool   // true when an explicit time-of-day was present
}

// Fixed clock times for named parts of the day.
const (
	MorningHour   = 9
	AfternoonHour = 14
	EveningHour   = 18
	TonightHour   = 20
)

// DefaultLeadTime is applied when no temporal expression is found at all:
// the result starts this far after the reference instant instead of failing.
const DefaultLeadTime = time.Hour

// pointDuration is the span of a TimeContext resolved to a single instant.
const pointDuration = time.Hour
