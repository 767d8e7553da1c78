package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/auth"
)

type fakeVerifier map[string]*firebaseauth.Token

func (f fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*firebaseauth.Token, error) {
	if tok, ok := f[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("token rejected")
}

var verifier = fakeVerifier{
	"admin-token": {UID: "admin-1", Claims: map[string]interface{}{"admin": true, "email": "a@jobly.test"}},
	"user-token":  {UID: "user-1", Claims: map[string]interface{}{}},
}

func newRouter(bypass bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(verifier))
	r.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": auth.UserFirebaseUID(c)})
	})
	r.POST("/admin", RequireAdmin(bypass), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": auth.UserEmail(c)})
	})
	r.GET("/me", RequireAuth(bypass), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r := newRouter(false)

	t.Run("anonymous requests pass", func(t *testing.T) {
		w := do(r, http.MethodGet, "/open", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"uid":""}`, w.Body.String())
	})

	t.Run("valid token sets the uid", func(t *testing.T) {
		w := do(r, http.MethodGet, "/open", "user-token")
		assert.JSONEq(t, `{"uid":"user-1"}`, w.Body.String())
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		w := do(r, http.MethodGet, "/open", "forged")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":{"message":"invalid token","status":401}}`, w.Body.String())
	})

	t.Run("non-bearer header is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter(false)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/admin", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/admin", "user-token").Code)

	w := do(r, http.MethodPost, "/admin", "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@jobly.test"}`, w.Body.String())
}

func TestRequireAdminBypass(t *testing.T) {
	r := newRouter(true)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/admin", "").Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/me", "").Code)
}

func TestRequireAuth(t *testing.T) {
	r := newRouter(false)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", "").Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/me", "user-token").Code)
}

func TestAuthenticateNilVerifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", "anything").Code)
}
