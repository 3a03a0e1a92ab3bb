package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/phambaophuc/pixel-color/internal/models"
	"github.com/phambaophuc/pixel-color/pkg/utils"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// PublishPixel announces a computed pixel on the configured queue.
func (q *QueueService) PublishPixel(ctx context.Context, result *models.PixelResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := models.PixelEvent{
		ID:           utils.NewID(),
		Source:       result.Source,
		Color:        result.Hex(),
		DataURL:      result.DataURL,
		SourceWidth:  result.SourceWidth,
		SourceHeight: result.SourceHeight,
		SourceFormat: result.SourceFormat,
		ProcessedAt:  time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	q.mu.Lock()
	err = q.channel.Publish(
		"",          // exchange
		q.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.ProcessedAt,
		},
	)
	q.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	q.logger.Debug("Pixel event published",
		zap.String("event_id", event.ID),
		zap.String("color", event.Color))
	return nil
}
