package services

import (
	"testing"
	"time"

	"jolliville/internal/models"
)

func TestGroupCalendarDays(t *testing.T) {
	at := func(day, hour int) time.Time {
		return time.Date(2025, 6, day, hour, 0, 0, 0, time.Local)
	}
	entries := []models.JournalEntry{
		{Mood: models.MoodHappy, CreatedAt: at(3, 9)},
		{Mood: models.MoodCalm, CreatedAt: at(3, 21)},
		{Mood: models.MoodSad, CreatedAt: at(14, 8)},
		{Mood: models.MoodAnxious, CreatedAt: at(30, 23)},
	}

	days := GroupCalendarDays(entries)
	if len(days) != 3 {
		t.Fatalf("got %d marked days, want 3", len(days))
	}

	// Days come back in order, each carrying its moods.
	if days[0].Day != 3 || days[1].Day != 14 || days[2].Day != 30 {
		t.Errorf("days out of order: %+v", days)
	}
	if days[0].Entries != 2 || len(days[0].Moods) != 2 {
		t.Errorf("day 3 should hold two entries: %+v", days[0])
	}
	if days[0].Moods[0] != models.MoodHappy || days[0].Moods[1] != models.MoodCalm {
		t.Errorf("day 3 moods wrong: %v", days[0].Moods)
	}

	// An entry written with mood happy on day D shows a happy marker on
	// day D of the month view.
	if days[1].Day != 14 || days[1].Moods[0] != models.MoodSad || days[1].Entries != 1 {
		t.Errorf("day 14 marker wrong: %+v", days[1])
	}

	if len(GroupCalendarDays(nil)) != 0 {
		t.Error("empty month must produce no markers")
	}
}
