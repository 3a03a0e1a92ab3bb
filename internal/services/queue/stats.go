package queue

import (
	"fmt"

	"github.com/phambaophuc/pixel-color/internal/models"
)

// GetQueueStats reports the depth of the event queue.
func (q *QueueService) GetQueueStats() (*models.QueueStats, error) {
	q.mu.Lock()
	info, err := q.channel.QueueInspect(q.queueName)
	q.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to inspect queue %s: %w", q.queueName, err)
	}

	return &models.QueueStats{
		Name:      info.Name,
		Messages:  info.Messages,
		Consumers: info.Consumers,
	}, nil
}

// HealthCheck checks if RabbitMQ is available
func (q *QueueService) HealthCheck() string {
	if q.conn == nil || q.conn.IsClosed() {
		return models.StatusUnhealthy + ": connection closed"
	}

	if q.channel == nil {
		return models.StatusUnhealthy + ": channel not available"
	}

	return models.StatusHealthy
}
