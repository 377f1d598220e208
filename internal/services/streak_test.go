package services

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -6)

	// First ever entry starts a streak of 1.
	if got := NextStreak(0, nil, now); got != 1 {
		t.Errorf("first entry: got %d, want 1", got)
	}

	// Yesterday extends the streak.
	if got := NextStreak(4, &yesterday, now); got != 5 {
		t.Errorf("consecutive day: got %d, want 5", got)
	}

	// A second entry on the same day keeps it.
	sameDay := now.Add(-2 * time.Hour)
	if got := NextStreak(5, &sameDay, now); got != 5 {
		t.Errorf("same day: got %d, want 5", got)
	}

	// Any gap resets to 1.
	if got := NextStreak(12, &lastWeek, now); got != 1 {
		t.Errorf("gap: got %d, want 1", got)
	}
}

func TestSameISOWeek(t *testing.T) {
	mon := time.Date(2025, 6, 9, 8, 0, 0, 0, time.Local)
	sun := time.Date(2025, 6, 15, 23, 0, 0, 0, time.Local)
	nextMon := time.Date(2025, 6, 16, 0, 30, 0, 0, time.Local)

	if !SameISOWeek(mon, sun) {
		t.Error("Monday and the following Sunday share an ISO week")
	}
	if SameISOWeek(sun, nextMon) {
		t.Error("Sunday and the next Monday are different ISO weeks")
	}
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	b := time.Date(2025, 6, 30, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)

	if !SameMonth(a, b) {
		t.Error("same month and year expected")
	}
	if SameMonth(a, c) {
		t.Error("same month in different years must not match")
	}
}
