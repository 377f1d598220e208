package services

import (
	"testing"

	"jolliville/internal/models"
)

func TestSalePrice(t *testing.T) {
	cases := []struct {
		price, want int
	}{
		{200, 160},
		{100, 80},
		{0, 0},
		{99, 79},  // 79.2 rounds down
		{123, 98}, // 98.4 rounds down
		{1, 1},    // 0.8 rounds up
	}
	for _, tc := range cases {
		if got := SalePrice(tc.price); got != tc.want {
			t.Errorf("SalePrice(%d) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	starters := 0
	for _, item := range Catalog {
		if item.ID == "" || item.Name == "" {
			t.Errorf("catalog item missing id or name: %+v", item)
		}
		if seen[item.ID] {
			t.Errorf("duplicate catalog id %s", item.ID)
		}
		seen[item.ID] = true

		if item.Price < 0 {
			t.Errorf("item %s has negative price", item.ID)
		}
		if item.IsStarter {
			starters++
			if item.Price != 0 {
				t.Errorf("starter item %s must be free, has price %d", item.ID, item.Price)
			}
		}
		switch item.Category {
		case models.CategoryHouses, models.CategoryTents, models.CategoryDecor, models.CategoryArcherTowers:
		default:
			t.Errorf("item %s has unknown category %s", item.ID, item.Category)
		}
	}
	if starters == 0 {
		t.Error("catalog has no starter items")
	}
	if len(StarterItems()) != starters {
		t.Errorf("StarterItems() returned %d items, want %d", len(StarterItems()), starters)
	}
}

func TestCatalogItemLookup(t *testing.T) {
	item, ok := CatalogItem("house-cabin")
	if !ok {
		t.Fatal("house-cabin missing from catalog")
	}
	if item.Price != 200 {
		t.Errorf("house-cabin price = %d, want 200", item.Price)
	}
	if _, ok := CatalogItem("nope"); ok {
		t.Error("lookup of unknown id must fail")
	}
}
