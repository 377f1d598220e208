package handlers

import (
	"net/http"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/utils"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct{}

func NewFriendHandler() *FriendHandler {
	return &FriendHandler{}
}

// Follow creates a directed edge immediately; there is no approval step.
func (h *FriendHandler) Follow(c *gin.Context) {
	profile := CurrentProfile(c)
	targetID := uint(utils.StringToInt(c.Param("id")))

	if targetID == 0 || targetID == profile.ID {
		JSONError(c, http.StatusBadRequest, "invalid profile id")
		return
	}

	var target models.Profile
	if err := db.DB.First(&target, targetID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "profile not found")
		return
	}

	edge := models.Friend{FollowerID: profile.ID, FollowingID: targetID}
	if err := db.DB.Where(&edge).FirstOrCreate(&edge).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to follow")
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": targetID})
}

func (h *FriendHandler) Unfollow(c *gin.Context) {
	profile := CurrentProfile(c)
	targetID := uint(utils.StringToInt(c.Param("id")))

	err := db.DB.Where("follower_id = ? AND following_id = ?", profile.ID, targetID).
		Delete(&models.Friend{}).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to unfollow")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *FriendHandler) Following(c *gin.Context) {
	profile := CurrentProfile(c)

	var edges []models.Friend
	err := db.DB.Preload("Following").
		Where("follower_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load friends")
		return
	}

	profiles := make([]models.PublicProfile, 0, len(edges))
	for _, e := range edges {
		profiles = append(profiles, e.Following.Public())
	}
	c.JSON(http.StatusOK, gin.H{"following": profiles})
}

func (h *FriendHandler) Followers(c *gin.Context) {
	profile := CurrentProfile(c)

	var edges []models.Friend
	err := db.DB.Preload("Follower").
		Where("following_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load followers")
		return
	}

	profiles := make([]models.PublicProfile, 0, len(edges))
	for _, e := range edges {
		profiles = append(profiles, e.Follower.Public())
	}
	c.JSON(http.StatusOK, gin.H{"followers": profiles})
}
