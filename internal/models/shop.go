package models

import (
	"time"
)

// Shop item categories
const (
	CategoryHouses       = "houses"
	CategoryTents        = "tents"
	CategoryDecor        = "decor"
	CategoryArcherTowers = "archer-towers"
)

// ShopItem is a catalog entry. The catalog is static and lives in code
// (services.Catalog); it is not persisted per-user. Ownership is tracked
// separately through OwnedItem rows.
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Price       int    `json:"price"`      // points
	IsStarter   bool   `json:"is_starter"` // granted free, never sellable
}

// OwnedItem marks one catalog item as owned by one profile. Presence of
// the row denotes ownership.
type OwnedItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index;uniqueIndex:idx_profile_item" json:"profile_id"`
	Profile   Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ItemID    string    `gorm:"size:50;not null;uniqueIndex:idx_profile_item" json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}
