package handlers

import (
	"log"
	"net/http"
	"strings"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/services"
	"jolliville/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=30"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	profile := models.Profile{
		Email:    strings.ToLower(req.Email),
		Username: req.Username,
		Password: hash,
		Status:   models.StatusActive,
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		JSONError(c, http.StatusConflict, "email already registered")
		return
	}

	// New villagers get the free starter items right away.
	if err := services.GrantStarterItems(&profile); err != nil {
		log.Printf("Starter grant failed for profile %d: %v", profile.ID, err)
	}

	session := sessions.Default(c)
	session.Set("profile_id", profile.ID)
	session.Save()

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid login payload")
		return
	}

	var profile models.Profile
	if err := db.DB.Where("email = ?", strings.ToLower(req.Email)).First(&profile).Error; err != nil {
		JSONError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !utils.CheckPasswordHash(req.Password, profile.Password) {
		JSONError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if profile.Status == models.StatusInactive {
		JSONError(c, http.StatusForbidden, "account is inactive")
		return
	}

	session := sessions.Default(c)
	session.Set("profile_id", profile.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": CurrentProfile(c)})
}

type updatePointsRequest struct {
	Amount int    `json:"amount" binding:"required"`
	Action string `json:"action"`
}

// UpdatePoints applies a ledger-backed balance adjustment for the current
// profile. Debits that would go below zero are rejected.
func (h *AuthHandler) UpdatePoints(c *gin.Context) {
	profile := CurrentProfile(c)

	var req updatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	action := req.Action
	if action == "" {
		action = services.ActionAdjustment
	}

	if err := services.AddPoints(profile.ID, req.Amount, action); err != nil {
		if err == services.ErrInsufficientPoints {
			JSONError(c, http.StatusBadRequest, "insufficient points")
			return
		}
		log.Printf("Points update failed for profile %d: %v", profile.ID, err)
		JSONError(c, http.StatusInternalServerError, "points update failed")
		return
	}

	db.DB.First(profile, profile.ID)
	c.JSON(http.StatusOK, gin.H{"points": profile.Points})
}

// PointLogs returns the recent ledger entries for the current profile.
func (h *AuthHandler) PointLogs(c *gin.Context) {
	profile := CurrentProfile(c)
	logs, err := services.PointLogs(profile.ID, utils.StringToInt(c.Query("limit")))
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load point logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

type updateProfileRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Status    string `json:"status"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	profile := CurrentProfile(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	updates := make(map[string]interface{})
	if req.Username != "" && req.Username != profile.Username {
		updates["username"] = req.Username
	}
	if req.AvatarURL != "" {
		updates["avatar_url"] = req.AvatarURL
	}
	if req.Status != "" {
		if req.Status != models.StatusActive && req.Status != models.StatusInactive && req.Status != models.StatusPending {
			JSONError(c, http.StatusBadRequest, "invalid status")
			return
		}
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := db.DB.Model(profile).Updates(updates).Error; err != nil {
			JSONError(c, http.StatusInternalServerError, "profile update failed")
			return
		}
		db.DB.First(profile, profile.ID)
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UploadAvatar accepts a multipart image, pushes it to the external image
// host and stores the returned URL on the profile.
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	profile := CurrentProfile(c)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		JSONError(c, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	url, err := services.UploadImage(file, header)
	if err != nil {
		log.Printf("Avatar upload failed for profile %d: %v", profile.ID, err)
		JSONError(c, http.StatusBadGateway, "image upload failed")
		return
	}

	if err := db.DB.Model(profile).Update("avatar_url", url).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "profile update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	profile := CurrentProfile(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if !utils.CheckPasswordHash(req.OldPassword, profile.Password) {
		JSONError(c, http.StatusBadRequest, "current password is incorrect")
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "password change failed")
		return
	}
	if err := db.DB.Model(profile).Update("password", hash).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "password change failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type syncPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// SyncPassword re-hashes and stores a password changed through the
// external auth provider, keeping the local credential copy in step.
// Session-gated: only the logged-in owner can sync.
func (h *AuthHandler) SyncPassword(c *gin.Context) {
	profile := CurrentProfile(c)

	var req syncPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "password sync failed")
		return
	}
	if err := db.DB.Model(profile).Update("password", hash).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "password sync failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteAccount hard-deletes the profile; journal entries, complaints,
// layouts, owned items, friends and conversations cascade with it.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	profile := CurrentProfile(c)

	if err := db.DB.Delete(profile).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "account deletion failed")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
