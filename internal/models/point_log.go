package models

import (
	"time"
)

type PointLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Profile   Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`
	Amount    int       `gorm:"not null" json:"amount"`          // positive credit, negative debit
	Action    string    `gorm:"size:100;not null" json:"action"` // what earned/spent the points
	CreatedAt time.Time `json:"created_at"`
}
