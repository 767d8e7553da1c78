package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxEmail       = "email"
	CtxIsAdmin     = "is_admin"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context
// This is set by the Authenticate middleware
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

func UserEmail(c *gin.Context) string {
	return c.GetString(CtxEmail)
}

// IsAdmin reports whether the request carried a verified admin token.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(CtxIsAdmin)
}
