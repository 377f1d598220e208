package models

import (
	"time"
)

// Profile status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

type Profile struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	Username        string     `gorm:"not null" json:"username"` // Username can be modified
	Password        string     `gorm:"not null" json:"-"`        // Hash
	AvatarURL       string     `json:"avatar_url"`
	Points          int        `gorm:"default:0" json:"points"`
	IsAdmin         bool       `gorm:"default:false" json:"is_admin"`
	Status          string     `gorm:"size:20;default:'active';not null" json:"status"` // active, inactive, pending
	CurrentStreak   int        `gorm:"default:0" json:"current_streak"`                 // consecutive journaling days
	WeeklyStreak    int        `gorm:"default:0" json:"weekly_streak"`                  // entries this ISO week
	MonthlyStreak   int        `gorm:"default:0" json:"monthly_streak"`                 // entries this calendar month
	LastJournalDate *time.Time `json:"last_journal_date"`
	StarterGranted  *time.Time `json:"starter_granted_at"` // set once when starter items are handed out
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	// No DeletedAt for hard delete
}

// PublicProfile is the subset of a profile other users may see. Email,
// points, streaks and role stay private to the owner.
type PublicProfile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Public projects the profile to its shareable subset.
func (p *Profile) Public() PublicProfile {
	return PublicProfile{
		ID:        p.ID,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
	}
}
