package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/services/lottery"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantHeader carries the tenant resolved by the upstream auth layer
const TenantHeader = "X-Tenant-ID"

const tenantKey = "tenant_id"

var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrNilService = errors.New("lottery service cannot be nil")
)

// Config holds configuration for the HTTP handler
type Config struct {
	Service lottery.Service

	// HealthCheck is optional; when set /healthz reports its result
	HealthCheck func(ctx context.Context) error

	Logger *zap.Logger
}

// Handler exposes the lottery service over HTTP
type Handler struct {
	service     lottery.Service
	healthCheck func(ctx context.Context) error
	logger      *zap.Logger
}

// response is the envelope every JSON endpoint answers with
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Service == nil {
		return nil, ErrNilService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		service:     cfg.Service,
		healthCheck: cfg.HealthCheck,
		logger:      logger.Named("http"),
	}, nil
}

// RegisterRoutes registers all the application routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.Use(h.TenantMiddleware())

	api.GET("/data", h.GetRoster)
	api.POST("/upload", h.UploadRoster)

	api.GET("/prizes", h.ListPrizes)
	api.POST("/prizes", h.UpsertPrize)
	api.DELETE("/prizes/:id", h.DeletePrize)
	api.POST("/prizes/reset", h.ClearPrizes)

	api.POST("/lottery/draw", h.Draw)
	api.POST("/lottery/invalidate", h.Invalidate)
	api.POST("/lottery/reset-winners", h.ResetWinners)
	api.GET("/lottery/winners", h.ListWinners)
	api.GET("/lottery/export", h.ExportWinners)
}

// TenantMiddleware rejects requests that do not name a tenant
func (h *Handler) TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(TenantHeader)
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{
				Success: false,
				Message: "missing " + TenantHeader + " header",
			})
			return
		}

		c.Set(tenantKey, tenantID)
		c.Next()
	}
}

// Health reports liveness, and storage reachability when a check is configured
func (h *Handler) Health(c *gin.Context) {
	if h.healthCheck != nil {
		if err := h.healthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func tenantID(c *gin.Context) string {
	return c.GetString(tenantKey)
}

func (h *Handler) ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response{
		Success: false,
		Message: message,
	})
}

// fail writes the status for the error's kind. Only unexpected failures are
// logged; the rest are ordinary outcomes of user actions.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("tenant_id", tenantID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, response{
		Success: false,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, lottery.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, lottery.ErrPrizeNotFound), errors.Is(err, lottery.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, lottery.ErrOutOfStock),
		errors.Is(err, lottery.ErrAllOutOfStock),
		errors.Is(err, lottery.ErrEmptyRoster),
		errors.Is(err, lottery.ErrNoCandidates),
		errors.Is(err, lottery.ErrInsufficientCapacity):
		return http.StatusBadRequest
	case errors.Is(err, lottery.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
