package services

import (
	"jolliville/internal/models"
)

// Catalog is the static shop inventory. It is code, not data: items are
// referenced everywhere by ID, so IDs must never be reused.
var Catalog = []models.ShopItem{
	// Houses
	{ID: "house-cottage", Name: "Cozy Cottage", Image: "/images/shop/house-cottage.png", Category: models.CategoryHouses, Price: 0, IsStarter: true},
	{ID: "house-cabin", Name: "Log Cabin", Image: "/images/shop/house-cabin.png", Category: models.CategoryHouses, Price: 200},
	{ID: "house-villa", Name: "Sunny Villa", Image: "/images/shop/house-villa.png", Category: models.CategoryHouses, Price: 350},
	{ID: "house-manor", Name: "Hilltop Manor", Image: "/images/shop/house-manor.png", Category: models.CategoryHouses, Price: 600},
	{ID: "house-windmill", Name: "Windmill House", Image: "/images/shop/house-windmill.png", Category: models.CategoryHouses, Subcategory: "special", Price: 450},

	// Tents
	{ID: "tent-basic", Name: "Camping Tent", Image: "/images/shop/tent-basic.png", Category: models.CategoryTents, Price: 0, IsStarter: true},
	{ID: "tent-teepee", Name: "Teepee", Image: "/images/shop/tent-teepee.png", Category: models.CategoryTents, Price: 120},
	{ID: "tent-circus", Name: "Circus Tent", Image: "/images/shop/tent-circus.png", Category: models.CategoryTents, Subcategory: "special", Price: 280},
	{ID: "tent-market", Name: "Market Stall", Image: "/images/shop/tent-market.png", Category: models.CategoryTents, Price: 180},

	// Decor
	{ID: "decor-tree", Name: "Oak Tree", Image: "/images/shop/decor-tree.png", Category: models.CategoryDecor, Subcategory: "nature", Price: 0, IsStarter: true},
	{ID: "decor-flowerbed", Name: "Flower Bed", Image: "/images/shop/decor-flowerbed.png", Category: models.CategoryDecor, Subcategory: "nature", Price: 60},
	{ID: "decor-fountain", Name: "Stone Fountain", Image: "/images/shop/decor-fountain.png", Category: models.CategoryDecor, Price: 220},
	{ID: "decor-bench", Name: "Park Bench", Image: "/images/shop/decor-bench.png", Category: models.CategoryDecor, Price: 80},
	{ID: "decor-lamppost", Name: "Lamp Post", Image: "/images/shop/decor-lamppost.png", Category: models.CategoryDecor, Price: 100},
	{ID: "decor-pond", Name: "Duck Pond", Image: "/images/shop/decor-pond.png", Category: models.CategoryDecor, Subcategory: "nature", Price: 160},
	{ID: "decor-statue", Name: "Fox Statue", Image: "/images/shop/decor-statue.png", Category: models.CategoryDecor, Subcategory: "special", Price: 320},

	// Archer towers
	{ID: "tower-wood", Name: "Wooden Watchtower", Image: "/images/shop/tower-wood.png", Category: models.CategoryArcherTowers, Price: 150},
	{ID: "tower-stone", Name: "Stone Tower", Image: "/images/shop/tower-stone.png", Category: models.CategoryArcherTowers, Price: 300},
	{ID: "tower-royal", Name: "Royal Keep", Image: "/images/shop/tower-royal.png", Category: models.CategoryArcherTowers, Subcategory: "special", Price: 550},
}

var catalogByID = func() map[string]models.ShopItem {
	m := make(map[string]models.ShopItem, len(Catalog))
	for _, item := range Catalog {
		m[item.ID] = item
	}
	return m
}()

// CatalogItem looks up one catalog entry by ID.
func CatalogItem(id string) (models.ShopItem, bool) {
	item, ok := catalogByID[id]
	return item, ok
}

// StarterItems returns the free starter subset of the catalog.
func StarterItems() []models.ShopItem {
	var starters []models.ShopItem
	for _, item := range Catalog {
		if item.IsStarter {
			starters = append(starters, item)
		}
	}
	return starters
}
