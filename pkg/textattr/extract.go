package textattr

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reLocation = regexp.MustCompile(`(?i)(?:\bat\s+|@)([A-Za-z][\w']*(?:\s+[\w']+)*)`)
	reDuration = regexp.MustCompile(`(?i)\b(?:takes|will take|duration|for)\s+(\d+)\s*(minutes?|mins?|hours?|hrs?)\b`)
	reTag      = regexp.MustCompile(`#(\w+)`)
)

// locationStops terminate a location phrase; anything from the first stop
// word onward belongs to a temporal or priority clause, not the place.
var locationStops = map[string]bool{
	"tomorrow": true, "today": true, "tonight": true, "next": true,
	"on": true, "in": true, "at": true, "every": true, "this": true,
	"am": true, "pm": true, "noon": true,
	"morning": true, "afternoon": true, "evening": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"urgent": true, "asap": true, "daily": true, "weekly": true, "monthly": true,
}

// Location extracts "at <place>" or "@<place>", terminated by a time/date
// keyword or end of string. Returns "" when no location is present.
func Location(text string) string {
	m := reLocation.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	var kept []string
	for _, tok := range strings.Fields(m[1]) {
		low := strings.ToLower(tok)
		if locationStops[low] || low == "" || (low[0] >= '0' && low[0] <= '9') || strings.HasPrefix(low, "#") {
			break
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// DurationMinutes extracts an estimated duration
// ("takes 30 minutes", "for 2 hours"), normalized to minutes. 0 means absent.
func DurationMinutes(text string) int {
	m := reDuration.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "hour") || strings.HasPrefix(unit, "hr") {
		n *= 60
	}
	return n
}

// Tags collects all #word tokens, case-folded and deduplicated,
// preserving first-seen order.
func Tags(text string) []string {
	seen := map[string]bool{}
	var tags []string
	for _, m := range reTag.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
