package services

import (
	"errors"
	"fmt"

	"jolliville/internal/db"
	"jolliville/internal/models"

	"gorm.io/gorm"
)

// Village grid parameters
const (
	BaseGridSize   = 8
	MaxGridSize    = 12
	GridExpandCost = 250 // points per one-step expansion
)

var (
	ErrGridMaxSize     = errors.New("grid is already at maximum size")
	ErrPositionTaken   = errors.New("duplicate grid position")
	ErrPositionOutside = errors.New("position outside grid")
	ErrItemNotOwned    = errors.New("cannot place an item that is not owned")
)

// Placement is one (item, cell) pair in a layout save request.
type Placement struct {
	ItemID   string `json:"item_id" binding:"required"`
	Position int    `json:"position"`
}

// ValidatePlacements checks a full layout before it replaces the stored
// one: positions inside grid_size², no cell used twice, every item owned.
func ValidatePlacements(placements []Placement, gridSize int, owned map[string]bool) error {
	cells := gridSize * gridSize
	seen := make(map[int]bool, len(placements))
	for _, p := range placements {
		if p.Position < 0 || p.Position >= cells {
			return fmt.Errorf("%w: %d (grid %dx%d)", ErrPositionOutside, p.Position, gridSize, gridSize)
		}
		if seen[p.Position] {
			return fmt.Errorf("%w: %d", ErrPositionTaken, p.Position)
		}
		seen[p.Position] = true
		if _, ok := CatalogItem(p.ItemID); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownItem, p.ItemID)
		}
		if !owned[p.ItemID] {
			return fmt.Errorf("%w: %s", ErrItemNotOwned, p.ItemID)
		}
	}
	return nil
}

// GetOrCreateLayout returns the profile's active layout, creating the
// initial 8x8 one on first access.
func GetOrCreateLayout(profile *models.Profile) (*models.VillageLayout, error) {
	layout := models.VillageLayout{ProfileID: profile.ID}
	err := db.DB.Where("profile_id = ?", profile.ID).
		Attrs(models.VillageLayout{GridSize: BaseGridSize, Points: profile.Points}).
		FirstOrCreate(&layout).Error
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

// LayoutItems returns the placements of a layout.
func LayoutItems(layoutID uint) ([]models.VillageItem, error) {
	var items []models.VillageItem
	err := db.DB.Where("layout_id = ?", layoutID).Order("position ASC").Find(&items).Error
	return items, err
}

// SaveLayout replaces the stored placements with the submitted set: delete
// everything, bulk-insert the new cells, refresh the balance snapshot.
// Saves are last-write-wins; two tabs saving concurrently are not
// reconciled.
func SaveLayout(profile *models.Profile, placements []Placement) (*models.VillageLayout, error) {
	layout, err := GetOrCreateLayout(profile)
	if err != nil {
		return nil, err
	}

	owned, err := OwnedItemIDs(profile.ID)
	if err != nil {
		return nil, err
	}
	if err := ValidatePlacements(placements, layout.GridSize, owned); err != nil {
		return nil, err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("layout_id = ?", layout.ID).Delete(&models.VillageItem{}).Error; err != nil {
			return err
		}
		for _, p := range placements {
			item := models.VillageItem{LayoutID: layout.ID, ItemID: p.ItemID, Position: p.Position}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return tx.Model(layout).Update("points", profile.Points).Error
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// ExpandLayout grows the grid by one step for a fixed point price, up to
// MaxGridSize. Debit and resize commit together.
func ExpandLayout(profile *models.Profile) (*models.VillageLayout, error) {
	layout, err := GetOrCreateLayout(profile)
	if err != nil {
		return nil, err
	}
	if layout.GridSize >= MaxGridSize {
		return nil, ErrGridMaxSize
	}
	if profile.Points < GridExpandCost {
		return nil, ErrInsufficientPoints
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := addPointsTx(tx, profile.ID, -GridExpandCost, ActionVillageExpand); err != nil {
			return err
		}
		return tx.Model(layout).Update("grid_size", layout.GridSize+1).Error
	})
	if err != nil {
		return nil, err
	}
	layout.GridSize++
	return layout, nil
}
