package timetext

import (
	"regexp"
	"strconv"
	"strings"
)

var reDuration = regexp.MustCompile(`\b(\d+)\s*(minutes?|mins?|hours?|hrs?)\b`)

// ParseDurationMinutes extracts a duration expression ("30 minutes",
// "2 hours", "an hour") from text, returning fallback when none is present.
func ParseDurationMinutes(text string, fallback int) int {
	lower := strings.ToLower(text)
	if m := reDuration.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "hour") || strings.HasPrefix(m[2], "hr") {
			n *= 60
		}
		if n > 0 {
			return n
		}
	}
	if strings.Contains(lower, "half an hour") || strings.Contains(lower, "half hour") {
		return 30
	}
	if strings.Contains(lower, "an hour") || strings.Contains(lower, "one hour") {
		return 60
	}
	return fallback
}
