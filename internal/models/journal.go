package models

import (
	"time"
)

// Journal moods
const (
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodCalm    = "calm"
	MoodAngry   = "angry"
	MoodAnxious = "anxious"
)

// ValidMood reports whether m is one of the journal mood values.
func ValidMood(m string) bool {
	switch m {
	case MoodHappy, MoodSad, MoodCalm, MoodAngry, MoodAnxious:
		return true
	}
	return false
}

// JournalEntry is append-only: entries are never edited or deleted once written.
type JournalEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProfileID  uint      `gorm:"not null;index" json:"profile_id"`
	Profile    Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Mood       string    `gorm:"size:20;not null" json:"mood"` // happy, sad, calm, angry, anxious
	Reflection string    `gorm:"type:text;not null" json:"reflection"`
	ImageURLs  string    `gorm:"type:text" json:"image_urls"` // comma-separated, optional
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
