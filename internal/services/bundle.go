package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/utils"

	"gorm.io/gorm"
)

// Bundle sizing and discount
const (
	BundleMinItems = 3
	BundleMaxItems = 5
	BundleDiscount = 0.85 // aggregate price multiplier
)

var (
	ErrBundleExpired     = errors.New("bundle offer expired")
	ErrNoBundleAvailable = errors.New("not enough unowned items for a bundle")
)

// BundleOffer is the rotating weekly discounted grouping. It is a pure
// function of (catalog, owned set, profile, week), so every render between
// now and expiry computes the identical offer; no scheduled job exists.
type BundleOffer struct {
	Items     []models.ShopItem `json:"items"`
	FullPrice int               `json:"full_price"`
	Price     int               `json:"price"` // round(0.85 * full price)
	ExpiresAt time.Time         `json:"expires_at"`
}

// NextMonday returns the upcoming Monday 00:00 UTC strictly after now.
func NextMonday(now time.Time) time.Time {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

// BundlePrice applies the aggregate discount: round(0.85 * total).
func BundlePrice(total int) int {
	return int(math.Round(float64(total) * BundleDiscount))
}

// ComputeBundle deterministically selects 3-5 currently-unowned catalog
// items for the given profile and week. Selection is seeded on
// (profile, ISO week) so repeated calls agree until the week rolls over.
func ComputeBundle(catalog []models.ShopItem, owned map[string]bool, profileID uint, now time.Time) (*BundleOffer, error) {
	var pool []models.ShopItem
	for _, item := range catalog {
		if !owned[item.ID] && !item.IsStarter && item.Price > 0 {
			pool = append(pool, item)
		}
	}
	if len(pool) < BundleMinItems {
		return nil, ErrNoBundleAvailable
	}

	year, week := now.UTC().ISOWeek()
	seed := int64(profileID)*1000000 + int64(year)*100 + int64(week)
	rng := rand.New(rand.NewSource(seed))

	count := BundleMinItems + rng.Intn(BundleMaxItems-BundleMinItems+1)
	if count > len(pool) {
		count = len(pool)
	}

	// Sample without replacement.
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	picked := pool[:count]

	total := 0
	for _, item := range picked {
		total += item.Price
	}

	return &BundleOffer{
		Items:     picked,
		FullPrice: total,
		Price:     BundlePrice(total),
		ExpiresAt: NextMonday(now),
	}, nil
}

func bundleCacheKey(profileID uint, now time.Time) string {
	year, week := now.UTC().ISOWeek()
	return fmt.Sprintf("bundle:%d:%d-%02d", profileID, year, week)
}

// invalidateBundleCache drops the cached weekly offer. Called whenever the
// owned set changes (item buy/sell, bundle buy), since the selection pool
// is built from currently-unowned items.
func invalidateBundleCache(profileID uint) {
	utils.GetCache().Delete(bundleCacheKey(profileID, time.Now()))
}

// CurrentBundle returns this week's offer for a profile, consulting the
// process cache first. Expiry is re-checked against the wall clock on
// every call.
func CurrentBundle(profileID uint) (*BundleOffer, error) {
	now := time.Now()
	key := bundleCacheKey(profileID, now)

	if cached := utils.GetCache().Get(key); cached != nil {
		offer := cached.(*BundleOffer)
		if now.Before(offer.ExpiresAt) {
			return offer, nil
		}
		utils.GetCache().Delete(key)
	}

	owned, err := OwnedItemIDs(profileID)
	if err != nil {
		return nil, err
	}
	offer, err := ComputeBundle(Catalog, owned, profileID, now)
	if err != nil {
		return nil, err
	}

	utils.GetCache().Set(key, offer, time.Until(offer.ExpiresAt))
	return offer, nil
}

// BuyBundle purchases the whole current offer: one debit for the
// discounted price plus every ownership row, in a single transaction.
func BuyBundle(profile *models.Profile) (*BundleOffer, error) {
	offer, err := CurrentBundle(profile.ID)
	if err != nil {
		return nil, err
	}
	if !time.Now().Before(offer.ExpiresAt) {
		return nil, ErrBundleExpired
	}

	// The cached offer may predate an individual purchase; re-check the
	// owned set before debiting anything.
	owned, err := OwnedItemIDs(profile.ID)
	if err != nil {
		return nil, err
	}
	for _, item := range offer.Items {
		if owned[item.ID] {
			invalidateBundleCache(profile.ID)
			return nil, ErrAlreadyOwned
		}
	}

	if profile.Points < offer.Price {
		return nil, ErrInsufficientPoints
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := addPointsTx(tx, profile.ID, -offer.Price, ActionBundlePurchase); err != nil {
			return err
		}
		for _, item := range offer.Items {
			if err := tx.Create(&models.OwnedItem{ProfileID: profile.ID, ItemID: item.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Next call recomputes against the now-larger owned set.
	invalidateBundleCache(profile.ID)
	return offer, nil
}
