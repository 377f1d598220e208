package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/services"
	"jolliville/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JournalHandler struct{}

func NewJournalHandler() *JournalHandler {
	return &JournalHandler{}
}

type createEntryRequest struct {
	Mood       string   `json:"mood" binding:"required"`
	Reflection string   `json:"reflection" binding:"required"`
	ImageURLs  []string `json:"image_urls"`
}

func (h *JournalHandler) Create(c *gin.Context) {
	profile := CurrentProfile(c)

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid journal payload")
		return
	}

	entry, err := services.CreateJournalEntry(profile, req.Mood, req.Reflection, req.ImageURLs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMood), errors.Is(err, services.ErrEmptyReflection):
			JSONError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Journal entry failed for profile %d: %v", profile.ID, err)
			JSONError(c, http.StatusInternalServerError, "failed to save entry")
		}
		return
	}

	// Reload so streaks and balance in the response reflect this entry.
	db.DB.First(profile, profile.ID)
	c.JSON(http.StatusCreated, gin.H{"entry": entry, "profile": profile})
}

func (h *JournalHandler) List(c *gin.Context) {
	profile := CurrentProfile(c)
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))

	entries, total, err := services.ListJournalEntries(profile.ID, page, limit)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total})
}

func (h *JournalHandler) Get(c *gin.Context) {
	profile := CurrentProfile(c)

	var entry models.JournalEntry
	err := db.DB.Where("profile_id = ? AND id = ?", profile.ID, c.Param("id")).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		JSONError(c, http.StatusNotFound, "entry not found")
		return
	}
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// Calendar returns mood markers per day for one month, for the calendar
// view.
func (h *JournalHandler) Calendar(c *gin.Context) {
	profile := CurrentProfile(c)

	now := time.Now()
	year := utils.StringToInt(c.DefaultQuery("year", ""))
	month := utils.StringToInt(c.DefaultQuery("month", ""))
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	days, err := services.JournalCalendar(profile.ID, year, time.Month(month))
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load calendar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "days": days})
}

// Summary returns mood counts over a trailing window for the charts.
func (h *JournalHandler) Summary(c *gin.Context) {
	profile := CurrentProfile(c)

	summary, err := services.MoodSummary(profile.ID, utils.StringToInt(c.DefaultQuery("days", "30")))
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load summary")
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
