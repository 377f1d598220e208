package services

import (
	"time"
)

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameISOWeek reports whether a and b fall in the same ISO week.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// NextStreak computes the consecutive-day streak after journaling at now,
// given the previous streak and last journal date. Same-day entries keep
// the streak, yesterday extends it, any gap resets to 1.
func NextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	if SameDay(*last, now) {
		if current < 1 {
			return 1
		}
		return current
	}
	yesterday := now.AddDate(0, 0, -1)
	if SameDay(*last, yesterday) {
		return current + 1
	}
	return 1
}
