package handlers

import (
	"errors"
	"log"
	"net/http"

	"jolliville/internal/db"
	"jolliville/internal/services"

	"github.com/gin-gonic/gin"
)

type VillageHandler struct{}

func NewVillageHandler() *VillageHandler {
	return &VillageHandler{}
}

// Get returns the profile's layout and placements, creating the initial
// 8x8 layout on first visit.
func (h *VillageHandler) Get(c *gin.Context) {
	profile := CurrentProfile(c)

	layout, err := services.GetOrCreateLayout(profile)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load village")
		return
	}
	items, err := services.LayoutItems(layout.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load village")
		return
	}
	c.JSON(http.StatusOK, gin.H{"layout": layout, "items": items})
}

type saveLayoutRequest struct {
	Items []services.Placement `json:"items"`
}

// Save replaces the stored layout with the submitted one. Explicit and
// manual: the client sends the full grid, last write wins.
func (h *VillageHandler) Save(c *gin.Context) {
	profile := CurrentProfile(c)

	var req saveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid layout payload")
		return
	}

	layout, err := services.SaveLayout(profile, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPositionOutside),
			errors.Is(err, services.ErrPositionTaken),
			errors.Is(err, services.ErrUnknownItem),
			errors.Is(err, services.ErrItemNotOwned):
			JSONError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Layout save failed for profile %d: %v", profile.ID, err)
			JSONError(c, http.StatusInternalServerError, "failed to save layout")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// Expand grows the grid one step for a fixed point price.
func (h *VillageHandler) Expand(c *gin.Context) {
	profile := CurrentProfile(c)

	layout, err := services.ExpandLayout(profile)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGridMaxSize):
			JSONError(c, http.StatusBadRequest, "grid is already at maximum size")
		case errors.Is(err, services.ErrInsufficientPoints):
			JSONError(c, http.StatusBadRequest, "insufficient points")
		default:
			log.Printf("Grid expansion failed for profile %d: %v", profile.ID, err)
			JSONError(c, http.StatusInternalServerError, "failed to expand grid")
		}
		return
	}

	db.DB.First(profile, profile.ID)
	c.JSON(http.StatusOK, gin.H{"layout": layout, "points": profile.Points})
}
