package middleware

import (
	"context"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/auth"
)

// AdminClaim is the custom claim that grants write access.
const AdminClaim = "admin"

// TokenVerifier is satisfied by *firebaseauth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// Authenticate verifies a Bearer token when one is sent and stores the caller
// in the Gin context. Requests without a token pass through anonymously; an
// invalid token is rejected. A nil verifier accepts every request anonymously.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" || verifier == nil {
			c.Next()
			return
		}

		decodedToken, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			respond.Error(c, apperr.Unauthorized("invalid token"))
			return
		}

		c.Set(auth.CtxFirebaseUID, decodedToken.UID)
		if email, ok := decodedToken.Claims["email"].(string); ok {
			c.Set(auth.CtxEmail, email)
		}
		isAdmin, _ := decodedToken.Claims[AdminClaim].(bool)
		c.Set(auth.CtxIsAdmin, isAdmin)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(bypass bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !bypass && auth.UserFirebaseUID(c) == "" {
			respond.Error(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests that did not present an admin token. bypass
// lets everything through and is only honoured outside production.
func RequireAdmin(bypass bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !bypass && !auth.IsAdmin(c) {
			respond.Error(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
