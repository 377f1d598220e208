package handlers

import (
	"errors"
	"log"
	"net/http"

	"jolliville/internal/db"
	"jolliville/internal/services"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct{}

func NewShopHandler() *ShopHandler {
	return &ShopHandler{}
}

// Catalog returns the full static catalog plus the caller's owned set, so
// the client can mark what is already bought.
func (h *ShopHandler) Catalog(c *gin.Context) {
	profile := CurrentProfile(c)

	// Accounts that missed the grant at registration pick it up here.
	if profile.StarterGranted == nil {
		if err := services.GrantStarterItems(profile); err != nil {
			log.Printf("Starter grant failed for profile %d: %v", profile.ID, err)
		}
	}

	owned, err := services.OwnedItemIDs(profile.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load shop")
		return
	}

	ownedIDs := make([]string, 0, len(owned))
	for id := range owned {
		ownedIDs = append(ownedIDs, id)
	}
	c.JSON(http.StatusOK, gin.H{"catalog": services.Catalog, "owned": ownedIDs})
}

// Owned returns just the caller's owned item ids.
func (h *ShopHandler) Owned(c *gin.Context) {
	profile := CurrentProfile(c)

	owned, err := services.OwnedItemIDs(profile.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load owned items")
		return
	}
	ids := make([]string, 0, len(owned))
	for id := range owned {
		ids = append(ids, id)
	}
	c.JSON(http.StatusOK, gin.H{"owned": ids})
}

type itemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

func (h *ShopHandler) Buy(c *gin.Context) {
	profile := CurrentProfile(c)

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := services.BuyItem(profile, req.ItemID); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownItem):
			JSONError(c, http.StatusNotFound, "unknown item")
		case errors.Is(err, services.ErrAlreadyOwned):
			JSONError(c, http.StatusConflict, "item already owned")
		case errors.Is(err, services.ErrInsufficientPoints):
			JSONError(c, http.StatusBadRequest, "insufficient points")
		default:
			log.Printf("Purchase failed for profile %d item %s: %v", profile.ID, req.ItemID, err)
			JSONError(c, http.StatusInternalServerError, "purchase failed")
		}
		return
	}

	db.DB.First(profile, profile.ID)
	c.JSON(http.StatusOK, gin.H{"points": profile.Points, "item_id": req.ItemID})
}

func (h *ShopHandler) Sell(c *gin.Context) {
	profile := CurrentProfile(c)

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	refund, err := services.SellItem(profile, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownItem):
			JSONError(c, http.StatusNotFound, "unknown item")
		case errors.Is(err, services.ErrStarterItem):
			JSONError(c, http.StatusBadRequest, "starter items cannot be sold")
		case errors.Is(err, services.ErrNotOwned):
			JSONError(c, http.StatusBadRequest, "item not owned")
		default:
			log.Printf("Sale failed for profile %d item %s: %v", profile.ID, req.ItemID, err)
			JSONError(c, http.StatusInternalServerError, "sale failed")
		}
		return
	}

	db.DB.First(profile, profile.ID)
	c.JSON(http.StatusOK, gin.H{"points": profile.Points, "refund": refund})
}

// Bundle returns the current weekly offer with its countdown expiry.
func (h *ShopHandler) Bundle(c *gin.Context) {
	profile := CurrentProfile(c)

	offer, err := services.CurrentBundle(profile.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoBundleAvailable) {
			c.JSON(http.StatusOK, gin.H{"bundle": nil})
			return
		}
		JSONError(c, http.StatusInternalServerError, "failed to load bundle")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bundle": offer})
}

func (h *ShopHandler) BuyBundle(c *gin.Context) {
	profile := CurrentProfile(c)

	offer, err := services.BuyBundle(profile)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoBundleAvailable):
			JSONError(c, http.StatusBadRequest, "no bundle available")
		case errors.Is(err, services.ErrBundleExpired):
			JSONError(c, http.StatusBadRequest, "bundle offer expired")
		case errors.Is(err, services.ErrAlreadyOwned):
			JSONError(c, http.StatusConflict, "bundle contains an item you already own")
		case errors.Is(err, services.ErrInsufficientPoints):
			JSONError(c, http.StatusBadRequest, "insufficient points")
		default:
			log.Printf("Bundle purchase failed for profile %d: %v", profile.ID, err)
			JSONError(c, http.StatusInternalServerError, "bundle purchase failed")
		}
		return
	}

	db.DB.First(profile, profile.ID)
	c.JSON(http.StatusOK, gin.H{"points": profile.Points, "bundle": offer})
}
