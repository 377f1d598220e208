package services

import (
	"errors"
	"strings"
	"time"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/utils"

	"gorm.io/gorm"
)

var ErrInvalidMood = errors.New("invalid mood")
var ErrEmptyReflection = errors.New("reflection is empty")

// CreateJournalEntry persists a new entry and, for the first entry of the
// day, advances the profile's streak counters and awards journaling
// points. Entry, counters and ledger all commit in one transaction.
func CreateJournalEntry(profile *models.Profile, mood, reflection string, imageURLs []string) (*models.JournalEntry, error) {
	if !models.ValidMood(mood) {
		return nil, ErrInvalidMood
	}
	reflection = utils.SanitizeText(reflection)
	if reflection == "" {
		return nil, ErrEmptyReflection
	}

	now := time.Now()
	entry := models.JournalEntry{
		ProfileID:  profile.ID,
		Mood:       mood,
		Reflection: reflection,
		ImageURLs:  strings.Join(imageURLs, ","),
	}

	firstToday := profile.LastJournalDate == nil || !SameDay(*profile.LastJournalDate, now)
	streak := NextStreak(profile.CurrentStreak, profile.LastJournalDate, now)

	weekly := profile.WeeklyStreak
	if profile.LastJournalDate == nil || !SameISOWeek(*profile.LastJournalDate, now) {
		weekly = 0
	}
	monthly := profile.MonthlyStreak
	if profile.LastJournalDate == nil || !SameMonth(*profile.LastJournalDate, now) {
		monthly = 0
	}
	weekly++
	monthly++

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"current_streak":    streak,
			"weekly_streak":     weekly,
			"monthly_streak":    monthly,
			"last_journal_date": now,
		}
		if err := tx.Model(profile).Updates(updates).Error; err != nil {
			return err
		}

		if firstToday {
			if err := addPointsTx(tx, profile.ID, PointsJournalEntry, ActionJournalEntry); err != nil {
				return err
			}
			if streak > 0 && streak%StreakBonusEvery == 0 {
				if err := addPointsTx(tx, profile.ID, PointsStreakBonus, ActionStreakBonus); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListJournalEntries pages a profile's entries, newest first.
func ListJournalEntries(profileID uint, page, limit int) ([]models.JournalEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var total int64
	if err := db.DB.Model(&models.JournalEntry{}).Where("profile_id = ?", profileID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.JournalEntry
	err := db.DB.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

// CalendarDay is one marker in the monthly calendar view.
type CalendarDay struct {
	Day     int      `json:"day"`
	Moods   []string `json:"moods"`
	Entries int      `json:"entries"`
}

// GroupCalendarDays folds a month's entries into per-day markers, in day
// order.
func GroupCalendarDays(entries []models.JournalEntry) []CalendarDay {
	byDay := make(map[int]*CalendarDay)
	for _, e := range entries {
		d := e.CreatedAt.Day()
		cd, ok := byDay[d]
		if !ok {
			cd = &CalendarDay{Day: d}
			byDay[d] = cd
		}
		cd.Entries++
		cd.Moods = append(cd.Moods, e.Mood)
	}

	days := make([]CalendarDay, 0, len(byDay))
	for d := 1; d <= 31; d++ {
		if cd, ok := byDay[d]; ok {
			days = append(days, *cd)
		}
	}
	return days
}

// JournalCalendar returns per-day mood markers for one calendar month.
func JournalCalendar(profileID uint, year int, month time.Month) ([]CalendarDay, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var entries []models.JournalEntry
	err := db.DB.Where("profile_id = ? AND created_at >= ? AND created_at < ?", profileID, start, end).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return GroupCalendarDays(entries), nil
}

// MoodSummary counts entries per mood over the trailing window, for the
// dashboard charts.
func MoodSummary(profileID uint, days int) (map[string]int64, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	type row struct {
		Mood  string
		Count int64
	}
	var rows []row
	err := db.DB.Model(&models.JournalEntry{}).
		Select("mood, count(*) as count").
		Where("profile_id = ? AND created_at >= ?", profileID, since).
		Group("mood").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := make(map[string]int64, len(rows))
	for _, r := range rows {
		summary[r.Mood] = r.Count
	}
	return summary, nil
}

// LatestJournalEntry returns the most recent entry, or nil when the
// profile has never journaled.
func LatestJournalEntry(profileID uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := db.DB.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
