package services

import (
	"math"
	"testing"
	"time"

	"jolliville/internal/utils"
)

func TestNextMonday(t *testing.T) {
	// Wednesday
	wed := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)
	got := NextMonday(wed)
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextMonday(wed) = %v, want %v", got, want)
	}

	// Monday itself must roll to the following Monday
	mon := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	got = NextMonday(mon)
	want = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextMonday(mon) = %v, want %v", got, want)
	}

	// Sunday
	sun := time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC)
	got = NextMonday(sun)
	want = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextMonday(sun) = %v, want %v", got, want)
	}
}

func TestBundlePrice(t *testing.T) {
	cases := []struct {
		total, want int
	}{
		{1000, 850},
		{100, 85},
		{333, 283}, // 283.05 rounds down
		{335, 285}, // 284.75 rounds up
		{0, 0},
	}
	for _, tc := range cases {
		if got := BundlePrice(tc.total); got != tc.want {
			t.Errorf("BundlePrice(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestComputeBundleDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	owned := map[string]bool{}

	a, err := ComputeBundle(Catalog, owned, 42, now)
	if err != nil {
		t.Fatalf("ComputeBundle failed: %v", err)
	}
	b, err := ComputeBundle(Catalog, owned, 42, now.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("ComputeBundle failed: %v", err)
	}

	// Same profile, same ISO week: identical selection on every render.
	if len(a.Items) != len(b.Items) {
		t.Fatalf("selection differs within the week: %d vs %d items", len(a.Items), len(b.Items))
	}
	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID {
			t.Errorf("item %d differs: %s vs %s", i, a.Items[i].ID, b.Items[i].ID)
		}
	}
	if a.Price != b.Price {
		t.Errorf("price differs within the week: %d vs %d", a.Price, b.Price)
	}
}

func TestComputeBundleContents(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	owned := map[string]bool{"house-cabin": true, "decor-fountain": true}

	offer, err := ComputeBundle(Catalog, owned, 7, now)
	if err != nil {
		t.Fatalf("ComputeBundle failed: %v", err)
	}

	if len(offer.Items) < BundleMinItems || len(offer.Items) > BundleMaxItems {
		t.Errorf("bundle has %d items, want %d-%d", len(offer.Items), BundleMinItems, BundleMaxItems)
	}

	seen := map[string]bool{}
	total := 0
	for _, item := range offer.Items {
		if owned[item.ID] {
			t.Errorf("bundle contains owned item %s", item.ID)
		}
		if item.IsStarter {
			t.Errorf("bundle contains starter item %s", item.ID)
		}
		if seen[item.ID] {
			t.Errorf("bundle contains %s twice", item.ID)
		}
		seen[item.ID] = true
		total += item.Price
	}

	if offer.FullPrice != total {
		t.Errorf("FullPrice = %d, want %d", offer.FullPrice, total)
	}
	want := int(math.Round(float64(total) * 0.85))
	if offer.Price != want {
		t.Errorf("Price = %d, want round(0.85*%d) = %d", offer.Price, total, want)
	}
	if !offer.ExpiresAt.Equal(NextMonday(now)) {
		t.Errorf("ExpiresAt = %v, want %v", offer.ExpiresAt, NextMonday(now))
	}
}

func TestBundleCacheInvalidation(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	offer, err := ComputeBundle(Catalog, map[string]bool{}, 99, now)
	if err != nil {
		t.Fatalf("ComputeBundle failed: %v", err)
	}

	// An individual buy or sell must drop the cached weekly offer, or a
	// later bundle purchase would collide with the now-owned item.
	key := bundleCacheKey(99, time.Now())
	utils.GetCache().Set(key, offer, time.Hour)
	if utils.GetCache().Get(key) == nil {
		t.Fatal("offer was not cached")
	}

	invalidateBundleCache(99)
	if utils.GetCache().Get(key) != nil {
		t.Error("cached offer survived invalidation")
	}

	// Other profiles' offers stay untouched.
	otherKey := bundleCacheKey(100, time.Now())
	utils.GetCache().Set(otherKey, offer, time.Hour)
	invalidateBundleCache(99)
	if utils.GetCache().Get(otherKey) == nil {
		t.Error("invalidation removed another profile's offer")
	}
}

func TestComputeBundleNotEnoughItems(t *testing.T) {
	owned := map[string]bool{}
	for _, item := range Catalog {
		owned[item.ID] = true
	}
	if _, err := ComputeBundle(Catalog, owned, 1, time.Now()); err != ErrNoBundleAvailable {
		t.Errorf("expected ErrNoBundleAvailable, got %v", err)
	}
}
