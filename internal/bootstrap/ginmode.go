package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GinMode maps APP_ENV to a gin mode. Unknown environments run in debug.
func GinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod", "staging":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// SetGinMode applies GinMode(env) and returns the selected mode.
func SetGinMode(env string) string {
	mode := GinMode(env)
	gin.SetMode(mode)
	return mode
}
