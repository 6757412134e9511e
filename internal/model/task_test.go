package model_test

import (
	"testing"
	"time"

	"smart-scheduler/internal/model"
)

func TestTaskDueInstant(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Stored due dates decode as UTC midnight; the instant must land on the
	// same civil day regardless of the resolving zone.
	day := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)

	t.Run("no due date", func(t *testing.T) {
		if got := (model.Task{DueTime: "14:00"}).DueInstant(newYork); got != nil {
			t.Errorf("DueInstant() = %v, want nil", got)
		}
	})

	t.Run("date only resolves to local midnight", func(t *testing.T) {
		got := (model.Task{DueDate: &day}).DueInstant(newYork)
		want := time.Date(2024, time.January, 16, 0, 0, 0, 0, newYork)
		if got == nil || !got.Equal(want) {
			t.Errorf("DueInstant() = %v, want %v", got, want)
		}
	})

	t.Run("timed task west of utc keeps its civil day", func(t *testing.T) {
		got := (model.Task{DueDate: &day, DueTime: "14:00"}).DueInstant(newYork)
		want := time.Date(2024, time.January, 16, 14, 0, 0, 0, newYork)
		if got == nil || !got.Equal(want) {
			t.Fatalf("DueInstant() = %v, want %v", got, want)
		}
		if got.Day() != 16 {
			t.Errorf("resolved day = %d, want 16", got.Day())
		}
	})

	t.Run("timed task in utc", func(t *testing.T) {
		got := (model.Task{DueDate: &day, DueTime: "09:30"}).DueInstant(time.UTC)
		want := time.Date(2024, time.January, 16, 9, 30, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("DueInstant() = %v, want %v", got, want)
		}
	})

	t.Run("malformed time of day falls back to midnight", func(t *testing.T) {
		got := (model.Task{DueDate: &day, DueTime: "9:00"}).DueInstant(time.UTC)
		want := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("DueInstant() = %v, want %v", got, want)
		}
	})
}
