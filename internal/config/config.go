package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultPort = 3000

type Config struct {
	Server   ServerConfig
	Fetch    FetchConfig
	Pixel    PixelConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// FetchConfig bounds the outbound request made for every src.
type FetchConfig struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
}

type PixelConfig struct {
	Filter    string
	MaxPixels int64
}

// RedisConfig enables outcome counters when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RabbitMQConfig enables event publishing when URL is set.
type RabbitMQConfig struct {
	URL   string
	Queue string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvAsPort("PORT", defaultPort),
			ReadTimeout:     getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("WRITE_TIMEOUT", 45*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Fetch: FetchConfig{
			Timeout:   getDuration("FETCH_TIMEOUT", 30*time.Second),
			MaxBytes:  getEnvAsInt64("FETCH_MAX_BYTES", 10*1024*1024), // 10MB
			UserAgent: getEnv("FETCH_USER_AGENT", "pixel-color/1.0"),
		},
		Pixel: PixelConfig{
			Filter:    strings.ToLower(getEnv("RESAMPLE_FILTER", "lanczos")),
			MaxPixels: getEnvAsInt64("MAX_SOURCE_PIXELS", 50_000_000),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   getEnv("RABBITMQ_URL", ""),
			Queue: getEnv("RABBITMQ_QUEUE", "pixel_color_events"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}

// getEnvAsPort reads the leading integer of the value, so "8080abc" is 8080.
// Anything without leading digits or outside the TCP port range falls back to defaultVal.
func getEnvAsPort(key string, defaultVal int) string {
	port, ok := leadingInt(os.Getenv(key))
	if !ok || port <= 0 || port > 65535 {
		port = defaultVal
	}
	return strconv.Itoa(port)
}

func leadingInt(value string) (int, bool) {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
