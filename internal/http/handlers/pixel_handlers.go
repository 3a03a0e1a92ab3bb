package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pixel-color/internal/models"
	"go.uber.org/zap"
)

const sourceParamKey = "src"

type Fetcher interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

type Sampler interface {
	Process(data []byte) (*models.PixelResult, error)
}

type EventPublisher interface {
	PublishPixel(ctx context.Context, result *models.PixelResult) error
	GetQueueStats() (*models.QueueStats, error)
	HealthCheck() string
}

type StatsStore interface {
	Record(ctx context.Context, outcome string) error
	GetStats(ctx context.Context) (map[string]int64, error)
	HealthCheck(ctx context.Context) string
}

type PixelHandler struct {
	fetcher   Fetcher
	sampler   Sampler
	publisher EventPublisher
	stats     StatsStore
	logger    *zap.Logger
}

// NewPixelHandler wires the endpoint. publisher and stats are optional and may be nil.
func NewPixelHandler(
	fetcher Fetcher,
	sampler Sampler,
	publisher EventPublisher,
	stats StatsStore,
	logger *zap.Logger,
) *PixelHandler {
	return &PixelHandler{
		fetcher:   fetcher,
		sampler:   sampler,
		publisher: publisher,
		stats:     stats,
		logger:    logger,
	}
}

// === MAIN API ENDPOINTS ===

// PixelColor answers ?src=<url> with the image's single-pixel GIF as a data URL.
func (h *PixelHandler) PixelColor(c *gin.Context) {
	src, err := h.parseSource(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.samplePixel(c.Request.Context(), src)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.recordOutcome(c.Request.Context(), models.OutcomeSuccess)
	h.publishResult(c.Request.Context(), result)

	c.String(http.StatusOK, result.DataURL)
}

func (h *PixelHandler) HealthCheck(c *gin.Context) {
	services := map[string]string{
		"redis":    models.StatusNotConfigured,
		"rabbitmq": models.StatusNotConfigured,
	}
	if h.stats != nil {
		services["redis"] = h.stats.HealthCheck(c.Request.Context())
	}
	if h.publisher != nil {
		services["rabbitmq"] = h.publisher.HealthCheck()
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == models.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == models.StatusHealthy,
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

// GetStats reports outcome counters and, when events are enabled, the event queue depth.
func (h *PixelHandler) GetStats(c *gin.Context) {
	if h.stats == nil && h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, models.APIResponse{
			Success: false,
			Error:   "stats are not configured",
		})
		return
	}

	stats := models.Stats{Timestamp: time.Now()}

	if h.stats != nil {
		counters, err := h.stats.GetStats(c.Request.Context())
		if err != nil {
			h.logger.Error("Failed to get stats", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, models.APIResponse{
				Success: false,
				Error:   "stats unavailable",
			})
			return
		}
		stats.Counters = counters
	}

	if h.publisher != nil {
		queueStats, err := h.publisher.GetQueueStats()
		if err != nil {
			h.logger.Warn("Failed to inspect event queue", zap.Error(err))
		} else {
			stats.Queue = queueStats
		}
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}
