package services

import (
	"errors"
	"math"
	"time"

	"jolliville/internal/db"
	"jolliville/internal/models"

	"gorm.io/gorm"
)

// SellRate is the fraction of the original price refunded on sale.
const SellRate = 0.8

var (
	ErrUnknownItem  = errors.New("unknown catalog item")
	ErrAlreadyOwned = errors.New("item already owned")
	ErrNotOwned     = errors.New("item not owned")
	ErrStarterItem  = errors.New("starter items cannot be sold")
)

// SalePrice is the refund for selling an item: round(price * 0.8).
func SalePrice(price int) int {
	return int(math.Round(float64(price) * SellRate))
}

// OwnedItemIDs returns the set of catalog IDs the profile owns.
func OwnedItemIDs(profileID uint) (map[string]bool, error) {
	var rows []models.OwnedItem
	if err := db.DB.Where("profile_id = ?", profileID).Find(&rows).Error; err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(rows))
	for _, r := range rows {
		owned[r.ItemID] = true
	}
	return owned, nil
}

// GrantStarterItems hands out every starter catalog item, free, exactly
// once per profile. The grant is keyed on StarterGranted rather than on
// "ownership set is empty", so selling everything later never re-grants.
func GrantStarterItems(profile *models.Profile) error {
	if profile.StarterGranted != nil {
		return nil
	}

	now := time.Now()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range StarterItems() {
			row := models.OwnedItem{ProfileID: profile.ID, ItemID: item.ID}
			if err := tx.Where(&row).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
		return tx.Model(profile).Update("starter_granted", now).Error
	})
	if err == nil {
		profile.StarterGranted = &now
	}
	return err
}

// BuyItem purchases one catalog item: ledger debit and ownership insert
// commit in a single transaction, so a failed insert can never leave the
// balance short.
func BuyItem(profile *models.Profile, itemID string) error {
	item, ok := CatalogItem(itemID)
	if !ok {
		return ErrUnknownItem
	}

	owned, err := OwnedItemIDs(profile.ID)
	if err != nil {
		return err
	}
	if owned[itemID] {
		return ErrAlreadyOwned
	}
	if profile.Points < item.Price {
		return ErrInsufficientPoints
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if item.Price > 0 {
			if err := addPointsTx(tx, profile.ID, -item.Price, ActionShopPurchase); err != nil {
				return err
			}
		}
		return tx.Create(&models.OwnedItem{ProfileID: profile.ID, ItemID: itemID}).Error
	})
	if err != nil {
		return err
	}

	// The weekly bundle is drawn from unowned items; drop any cached offer.
	invalidateBundleCache(profile.ID)
	return nil
}

// SellItem sells a non-starter owned item for 80% of its price. If the
// item is placed in the profile's village, the placement rows go with it,
// all in the same transaction.
func SellItem(profile *models.Profile, itemID string) (int, error) {
	item, ok := CatalogItem(itemID)
	if !ok {
		return 0, ErrUnknownItem
	}
	if item.IsStarter {
		return 0, ErrStarterItem
	}

	var row models.OwnedItem
	err := db.DB.Where("profile_id = ? AND item_id = ?", profile.ID, itemID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotOwned
	}
	if err != nil {
		return 0, err
	}

	refund := SalePrice(item.Price)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Remove any placement of this item from the village first.
		var layout models.VillageLayout
		lerr := tx.Where("profile_id = ?", profile.ID).First(&layout).Error
		if lerr == nil {
			if err := tx.Where("layout_id = ? AND item_id = ?", layout.ID, itemID).
				Delete(&models.VillageItem{}).Error; err != nil {
				return err
			}
		} else if !errors.Is(lerr, gorm.ErrRecordNotFound) {
			return lerr
		}

		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		if refund > 0 {
			return addPointsTx(tx, profile.ID, refund, ActionShopSale)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// The sold item is unowned again and back in the bundle pool.
	invalidateBundleCache(profile.ID)
	return refund, nil
}
