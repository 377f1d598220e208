package models

import (
	"time"
)

// Complaint statuses. The UI offers them as a dropdown; no transition
// graph is enforced server-side.
const (
	ComplaintPending    = "pending"
	ComplaintInProgress = "in progress"
	ComplaintResolved   = "resolved"
)

// ValidComplaintStatus reports whether s is one of the complaint statuses.
func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

type Complaint struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProfileID       uint      `gorm:"not null;index" json:"profile_id"`
	Profile         Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`
	Subject         string    `gorm:"size:200;not null" json:"subject"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Status          string    `gorm:"size:20;default:'pending';not null" json:"status"` // pending, in progress, resolved
	ResolutionNotes string    `gorm:"type:text" json:"resolution_notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
