package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

type sample struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Count *int    `json:"count,omitempty" binding:"omitempty,min=0"`
}

type createSample struct {
	Handle string `json:"handle" binding:"required,max=5"`
}

func newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.NotFound("No company: x"), http.StatusNotFound, "No company: x"},
		{apperr.Duplicate("Duplicate company: x"), http.StatusBadRequest, "Duplicate company: x"},
		{apperr.Unauthorized("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		c, w := newContext("")
		Error(c, tc.err)

		assert.Equal(t, tc.status, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.message, body.Error.Message)
		assert.Equal(t, tc.status, body.Error.Status)
		assert.True(t, c.IsAborted())
	}
}

func TestDecodeStrict(t *testing.T) {
	t.Run("known fields", func(t *testing.T) {
		c, _ := newContext(`{"name":"x","count":3}`)
		var s sample
		require.NoError(t, DecodeStrict(c, &s))
		assert.Equal(t, "x", *s.Name)
		assert.Equal(t, 3, *s.Count)
	})

	t.Run("unknown field", func(t *testing.T) {
		c, _ := newContext(`{"handle":"new"}`)
		var s sample
		err := DecodeStrict(c, &s)
		assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
		assert.Equal(t, "handle is not allowed", err.Error())
	})

	t.Run("validation uses json names", func(t *testing.T) {
		c, _ := newContext(`{"count":-1}`)
		var s sample
		err := DecodeStrict(c, &s)
		assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
		assert.Equal(t, "count must be at least 0", err.Error())
	})

	t.Run("wrong type", func(t *testing.T) {
		c, _ := newContext(`{"count":"many"}`)
		var s sample
		assert.ErrorIs(t, DecodeStrict(c, &s), apperr.ErrInvalidRequest)
	})

	t.Run("empty body is the zero value", func(t *testing.T) {
		c, _ := newContext(``)
		var s sample
		require.NoError(t, DecodeStrict(c, &s))
		assert.Nil(t, s.Name)
	})
}

func TestBindJSON(t *testing.T) {
	c, _ := newContext(`{}`)
	var s createSample
	err := BindJSON(c, &s)
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
	assert.Equal(t, "handle is required", err.Error())

	c, _ = newContext(`{"handle":"toolong"}`)
	err = BindJSON(c, &s)
	assert.Equal(t, "handle must be at most 5", err.Error())
}
