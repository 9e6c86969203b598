package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/changhyeonkim/splearn/internal/config"
	"github.com/changhyeonkim/splearn/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// Pinger is satisfied by *database.DB.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg *config.Config
	db  Pinger
}

type serviceInfo struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Port        int    `json:"port,omitempty"`
}

type dependencyCheck struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string                     `json:"status"`
	Service serviceInfo                `json:"service"`
	Checks  map[string]dependencyCheck `json:"checks"`
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db Pinger) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Service: serviceInfo{
				Name:        h.cfg.App.Name,
				Environment: h.cfg.App.Env,
			},
			Checks: map[string]dependencyCheck{
				"database": {Status: "down", Error: err.Error()},
			},
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Service: serviceInfo{
			Name:        h.cfg.App.Name,
			Environment: h.cfg.App.Env,
			Port:        h.cfg.App.Port,
		},
		Checks: map[string]dependencyCheck{
			"database": {Status: "up", LatencyMs: time.Since(start).Milliseconds()},
		},
	})
}
