package handlers

import (
	"jolliville/internal/middleware"
	"jolliville/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentProfile returns the profile LoadUser resolved for this request,
// or nil on unauthenticated routes.
func CurrentProfile(c *gin.Context) *models.Profile {
	u, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil
	}
	return u.(*models.Profile)
}

// JSONError writes the uniform error envelope.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
