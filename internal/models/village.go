package models

import (
	"time"
)

// VillageLayout is the one active arrangement per profile (first-or-create).
// GridSize starts at 8 and can be expanded up to a maximum by spending points.
type VillageLayout struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;uniqueIndex" json:"profile_id"`
	Profile   Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	GridSize  int       `gorm:"default:8;not null" json:"grid_size"`
	Points    int       `gorm:"default:0" json:"points"` // balance snapshot at last save
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VillageItem is a single placement: a catalog item sitting on one grid
// cell. Position is a row-major index into grid_size² cells; at most one
// placement per cell per layout.
type VillageItem struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	LayoutID  uint          `gorm:"not null;index;uniqueIndex:idx_layout_position" json:"layout_id"`
	Layout    VillageLayout `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ItemID    string        `gorm:"size:50;not null" json:"item_id"`
	Position  int           `gorm:"not null;uniqueIndex:idx_layout_position" json:"position"`
	CreatedAt time.Time     `json:"created_at"`
}
