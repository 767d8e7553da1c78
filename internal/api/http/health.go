package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Store states reported in HealthResponse.DB.
const (
	StoreDisabled   = "disabled"
	StoreUp         = "up"
	StoreDown       = "down"
	StoreUnmigrated = "unmigrated"
)

type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Service       string    `json:"service"`
	Version       string    `json:"version"`
	DB            string    `json:"db,omitempty"`
	MissingTables []string  `json:"missingTables,omitempty"`
}

// StoreChecker is satisfied by *postgres.Readiness. Check returns the tables
// the schema still lacks.
type StoreChecker interface {
	Check(ctx context.Context) ([]string, error)
}

type HealthHandler struct {
	serviceName string
	version     string
	store       StoreChecker
}

func NewHealthHandler(serviceName, version string, store StoreChecker) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
	}
}

func (h *HealthHandler) report(ctx context.Context) HealthResponse {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        StoreDisabled,
	}
	if h.store == nil {
		return resp
	}

	checkCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	missing, err := h.store.Check(checkCtx)
	switch {
	case err != nil:
		resp.DB = StoreDown
	case len(missing) > 0:
		resp.DB = StoreUnmigrated
		resp.MissingTables = missing
	default:
		resp.DB = StoreUp
	}
	return resp
}

// HealthCheck is the liveness probe: 200 while the process serves requests.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.report(c.Request.Context()))
}

// ReadyCheck answers 503 until the store is reachable and migrated.
func (h *HealthHandler) ReadyCheck(c *gin.Context) {
	resp := h.report(c.Request.Context())
	if resp.DB != StoreUp && resp.DB != StoreDisabled {
		resp.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.ReadyCheck)
}
