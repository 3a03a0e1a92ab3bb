package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pixel-color/internal/models"
	"github.com/phambaophuc/pixel-color/pkg/utils"
	"go.uber.org/zap"
)

// === REQUEST PARSING ===

// parseSource requires exactly one src value; a repeated parameter is not a string.
func (h *PixelHandler) parseSource(c *gin.Context) (string, error) {
	values := utils.QueryValues(c.Request.URL.RawQuery, sourceParamKey)
	if len(values) != 1 {
		return "", models.NewHTTPError(models.ErrMissingSource, "No source")
	}

	src := values[0]
	if !utils.HasHTTPPrefix(src) {
		return "", models.NewHTTPError(models.ErrInvalidSourceURL, "Invalid source URL")
	}

	return src, nil
}

// === PROCESSING LOGIC ===

func (h *PixelHandler) samplePixel(ctx context.Context, src string) (*models.PixelResult, error) {
	data, err := h.fetcher.Download(ctx, src)
	if err != nil {
		h.logger.Warn("Fetch failed",
			zap.String("src", utils.TruncateURL(src)),
			zap.Error(err))
		return nil, models.NewHTTPError(models.ErrFetchOrTransform, err.Error())
	}

	result, err := h.sampler.Process(data)
	if err != nil {
		h.logger.Warn("Transform failed",
			zap.String("src", utils.TruncateURL(src)),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return nil, models.NewHTTPError(models.ErrFetchOrTransform, err.Error())
	}

	result.Source = src
	return result, nil
}

// === RESPONSE HANDLING ===

func (h *PixelHandler) respondError(c *gin.Context, err error) {
	var httpErr *models.HTTPError
	if errors.As(err, &httpErr) {
		h.recordOutcome(c.Request.Context(), httpErr.Kind.Outcome())
	}

	c.Error(err)
	c.Abort()
}

// === SIDE CHANNELS ===

func (h *PixelHandler) recordOutcome(ctx context.Context, outcome string) {
	if h.stats == nil {
		return
	}
	if err := h.stats.Record(ctx, outcome); err != nil {
		h.logger.Warn("Failed to record stats", zap.String("outcome", outcome), zap.Error(err))
	}
}

func (h *PixelHandler) publishResult(ctx context.Context, result *models.PixelResult) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishPixel(ctx, result); err != nil {
		h.logger.Warn("Failed to publish pixel event", zap.Error(err))
	}
}

// === UTILITY METHODS ===

func (h *PixelHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != models.StatusHealthy && status != models.StatusNotConfigured {
			return models.StatusUnhealthy
		}
	}
	return models.StatusHealthy
}
