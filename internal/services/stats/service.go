package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phambaophuc/pixel-color/internal/config"
	"github.com/phambaophuc/pixel-color/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const KeyPrefix = "pixel_stats:"

// StatsService keeps per-outcome request counters in Redis.
type StatsService struct {
	redisClient *redis.Client
	logger      *zap.Logger
	timeout     time.Duration
}

func NewStatsService(cfg config.RedisConfig, logger *zap.Logger) *StatsService {
	timeout := 2 * time.Second

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   1,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	return &StatsService{
		redisClient: redisClient,
		logger:      logger,
		timeout:     timeout,
	}
}

// Record increments the counter for outcome. The caller's cancellation is ignored
// so a dropped client still gets counted.
func (s *StatsService) Record(ctx context.Context, outcome string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.redisClient.Incr(ctx, KeyPrefix+outcome).Err(); err != nil {
		return fmt.Errorf("failed to record %s: %w", outcome, err)
	}
	return nil
}

func (s *StatsService) GetStats(ctx context.Context) (map[string]int64, error) {
	pipeline := s.redisClient.Pipeline()

	cmds := make(map[string]*redis.StringCmd, len(models.Outcomes))
	for _, outcome := range models.Outcomes {
		cmds[outcome] = pipeline.Get(ctx, KeyPrefix+outcome)
	}

	if _, err := pipeline.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("pipeline error: %w", err)
	}

	counters := make(map[string]int64, len(cmds))
	for outcome, cmd := range cmds {
		n, err := cmd.Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("invalid counter %s: %w", outcome, err)
		}
		counters[outcome] = n
	}

	return counters, nil
}

// HealthCheck pings Redis
func (s *StatsService) HealthCheck(ctx context.Context) string {
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return models.StatusUnhealthy + ": " + err.Error()
	}
	return models.StatusHealthy
}

func (s *StatsService) Close() error {
	return s.redisClient.Close()
}
