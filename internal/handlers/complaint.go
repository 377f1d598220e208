package handlers

import (
	"errors"
	"net/http"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ComplaintHandler struct{}

func NewComplaintHandler() *ComplaintHandler {
	return &ComplaintHandler{}
}

type submitComplaintRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}

// Submit files a new complaint; it starts as pending.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	profile := CurrentProfile(c)

	var req submitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid complaint payload")
		return
	}

	complaint := models.Complaint{
		ProfileID:   profile.ID,
		Subject:     utils.SanitizeText(req.Subject),
		Description: utils.SanitizeText(req.Description),
		Status:      models.ComplaintPending,
	}
	if complaint.Subject == "" || complaint.Description == "" {
		JSONError(c, http.StatusBadRequest, "subject and description are required")
		return
	}
	if err := db.DB.Create(&complaint).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to submit complaint")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
}

// ListMine returns the caller's own complaints, newest first.
func (h *ComplaintHandler) ListMine(c *gin.Context) {
	profile := CurrentProfile(c)

	var complaints []models.Complaint
	err := db.DB.Where("profile_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load complaints")
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// AdminList returns all complaints for the dashboard, optionally filtered
// by status.
func (h *ComplaintHandler) AdminList(c *gin.Context) {
	q := db.DB.Preload("Profile").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !models.ValidComplaintStatus(status) {
			JSONError(c, http.StatusBadRequest, "invalid status filter")
			return
		}
		q = q.Where("status = ?", status)
	}

	var complaints []models.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load complaints")
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

type updateComplaintRequest struct {
	Status          string `json:"status" binding:"required"`
	ResolutionNotes string `json:"resolution_notes"`
}

// AdminUpdate sets a complaint's status and resolution notes. Only the
// enum is validated; the pending → in progress → resolved order is a UI
// convention, not a server rule.
func (h *ComplaintHandler) AdminUpdate(c *gin.Context) {
	var req updateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if !models.ValidComplaintStatus(req.Status) {
		JSONError(c, http.StatusBadRequest, "invalid status")
		return
	}

	var complaint models.Complaint
	err := db.DB.First(&complaint, c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		JSONError(c, http.StatusNotFound, "complaint not found")
		return
	}
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load complaint")
		return
	}

	notes := utils.SanitizeText(req.ResolutionNotes)
	updates := map[string]interface{}{
		"status":           req.Status,
		"resolution_notes": notes,
	}
	if err := db.DB.Model(&complaint).Updates(updates).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to update complaint")
		return
	}
	complaint.Status = req.Status
	complaint.ResolutionNotes = notes
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}
