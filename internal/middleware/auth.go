package middleware

import (
	"net/http"

	"jolliville/internal/db"
	"jolliville/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "profile"

// LoadUser resolves the session cookie to a profile and stores it in the
// request context. Runs on every request; missing or stale sessions just
// leave the context empty.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		profileID := session.Get("profile_id")

		if profileID != nil {
			var profile models.Profile
			if err := db.DB.First(&profile, profileID).Error; err == nil {
				c.Set(CheckUserKey, &profile)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests without a resolved profile.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// AdminRequired rejects requests from non-admin profiles. Assumes
// LoadUser ran first.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CheckUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !u.(*models.Profile).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
