package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/auth"
)

// Me describes the verified caller.
type Me struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// Register mounts GET /me on rg. guard must reject anonymous callers.
func Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("/me", guard, getMe)
}

// getMe returns the identity resolved by the Authenticate middleware
func getMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": Me{
		UID:     auth.UserFirebaseUID(c),
		Email:   auth.UserEmail(c),
		IsAdmin: auth.IsAdmin(c),
	}})
}
