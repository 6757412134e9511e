package recurrence

import (
	"testing"
	"time"
)

func TestNext(t *testing.T) {
	due := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rule Rule
		want time.Time
	}{
		{
			name: "daily",
			rule: Rule{Type: Daily, Interval: 1},
			want: time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "every third day",
			rule: Rule{Type: Daily, Interval: 3},
			want: time.Date(2024, time.January, 18, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly",
			rule: Rule{Type: Weekly, Interval: 1},
			want: time.Date(2024, time.January, 22, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "monthly",
			rule: Rule{Type: Monthly, Interval: 1},
			want: time.Date(2024, time.February, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "time of day pinned",
			rule: Rule{Type: Daily, Interval: 1, TimeOfDay: "18:30"},
			want: time.Date(2024, time.January, 16, 18, 30, 0, 0, time.UTC),
		},
		{
			name: "non-positive interval counts as one",
			rule: Rule{Type: Daily, Interval: 0},
			want: time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.rule, due)
			if !got.Equal(tt.want) {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextIsStrictlyAfterDue(t *testing.T) {
	due := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC)
	for _, rule := range []Rule{
		{Type: Daily, Interval: 1},
		{Type: Weekly, Interval: 2},
		{Type: Monthly, Interval: 1},
		{Type: Daily, Interval: 1, TimeOfDay: "00:00"},
		{Type: Daily, Interval: -5},
	} {
		if got := Next(rule, due); !got.After(due) {
			t.Errorf("Next(%+v) = %v, not strictly after %v", rule, got, due)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		rule    Rule
		encoded string
	}{
		{Rule{Type: Daily, Interval: 1}, "daily:1"},
		{Rule{Type: Weekly, Interval: 2}, "weekly:2"},
		{Rule{Type: Daily, Interval: 1, TimeOfDay: "09:00"}, "daily:1:09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.encoded, func(t *testing.T) {
			if got := Encode(tt.rule); got != tt.encoded {
				t.Errorf("Encode() = %q, want %q", got, tt.encoded)
			}
			decoded, ok := Decode(tt.encoded)
			if !ok || decoded != tt.rule {
				t.Errorf("Decode(%q) = %+v, %v", tt.encoded, decoded, ok)
			}
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "daily", "yearly:1", "daily:x", "daily:0", "daily:1:25:00", "daily:1:9am"} {
		if _, ok := Decode(s); ok {
			t.Errorf("Decode(%q) accepted malformed input", s)
		}
	}
}
