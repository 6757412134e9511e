package timetext

import "time"

// Named whole-day and whole-week windows. All are half-open [Start, End).

// Today returns the window covering ref's calendar day.
func (p *Parser) Today(ref time.Time) TimeContext {
	start := p.startOfDay(ref.In(p.location))
	return TimeContext{Start: start, End: start.AddDate(0, 0, 1), SourceText: "today"}
}

// Tomorrow returns the window covering the day after ref.
func (p *Parser) Tomorrow(ref time.Time) TimeContext {
	start := p.startOfDay(ref.In(p.location).AddDate(0, 0, 1))
	return TimeContext{Start: start, End: start.AddDate(0, 0, 1), SourceText: "tomorrow"}
}

// ThisWeek returns the Monday-anchored window covering ref's week.
func (p *Parser) ThisWeek(ref time.Time) TimeContext {
	start := p.startOfWeek(ref.In(p.location))
	return TimeContext{Start: start, End: start.AddDate(0, 0, 7), SourceText: "this week"}
}

// NextWeek returns the Monday-anchored window covering the week after ref's.
func (p *Parser) NextWeek(ref time.Time) TimeContext {
	start := p.startOfWeek(ref.In(p.location)).AddDate(0, 0, 7)
	return TimeContext{Start: start, End: start.AddDate(0, 0, 7), SourceText: "next week"}
}

// Day returns the window covering the calendar day containing t.
func (p *Parser) Day(t time.Time) TimeContext {
	start := p.startOfDay(t)
	return TimeContext{Start: start, End: start.AddDate(0, 0, 1)}
}
