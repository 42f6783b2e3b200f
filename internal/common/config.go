package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
)

// Config holds all application configuration
type Config struct {
	Database      DatabaseConfig
	Redis         RedisConfig
	Server        ServerConfig
	Pipeline      PipelineConfig
	Health        HealthConfig
	Collaborators CollaboratorsConfig
	Ingest        IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// RedisConfig holds queue-backend configuration. An empty Addr selects the
// in-process backend (single-node development and tests).
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	DialTimeout   time.Duration
	ReconnectBase time.Duration
	ReconnectMax  time.Duration
	KeyPrefix     string
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr      string
	HTTPAddr      string
	SSEHeartbeat  time.Duration
	ShutdownGrace time.Duration
}

// StageConfig holds per-queue tuning for one pipeline stage.
type StageConfig struct {
	Concurrency int
	MaxAttempts int
	BackoffBase time.Duration
	BackoffMax  time.Duration
	Timeout     time.Duration
}

// PipelineConfig holds the per-stage queue settings plus cross-stage policy.
type PipelineConfig struct {
	Stages           map[string]StageConfig
	LowPriorityDelay time.Duration
	BatchDelay       time.Duration
	// ReviewThresholds maps stage name to the minimum acceptable result
	// confidence before the workflow pauses for review.
	ReviewThresholds map[string]float32
	// LargePayloadBytes is the payload size above which a job is downgraded
	// one priority tier.
	LargePayloadBytes int
}

// CollaboratorsConfig points at the external services the stage handlers
// call. An empty ImageURL disables the image preprocessing stage.
type CollaboratorsConfig struct {
	ExtractorURL string
	SyncURL      string
	ImageURL     string
	CallTimeout  time.Duration
}

// IngestConfig enables the optional drop-folder intake. An empty WatchDir
// disables it.
type IngestConfig struct {
	WatchDir   string
	ShopDomain string
	Debounce   time.Duration
}

// HealthConfig holds monitoring thresholds for queue health classification.
type HealthConfig struct {
	PollInterval     time.Duration
	BacklogWarning   int
	FailureRateLimit float64
	Retention        time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Redis: RedisConfig{
			Addr:          getEnv("REDIS_ADDR", ""),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvAsInt("REDIS_DB", 0),
			DialTimeout:   getEnvAsDuration("REDIS_DIAL_TIMEOUT", 3*time.Second),
			ReconnectBase: getEnvAsDuration("REDIS_RECONNECT_BASE", time.Second),
			ReconnectMax:  getEnvAsDuration("REDIS_RECONNECT_MAX", 30*time.Second),
			KeyPrefix:     getEnv("REDIS_KEY_PREFIX", "orderflow"),
		},
		Server: ServerConfig{
			GRPCAddr:      getEnv("GRPC_ADDR", ":8080"),
			HTTPAddr:      getEnv("HTTP_ADDR", ":8081"),
			SSEHeartbeat:  getEnvAsDuration("SSE_HEARTBEAT", 15*time.Second),
			ShutdownGrace: getEnvAsDuration("SHUTDOWN_GRACE", 30*time.Second),
		},
		Pipeline: PipelineConfig{
			Stages: map[string]StageConfig{
				constants.StageExtract: {
					Concurrency: getEnvAsInt("EXTRACT_CONCURRENCY", 4),
					MaxAttempts: getEnvAsInt("EXTRACT_MAX_ATTEMPTS", 3),
					BackoffBase: getEnvAsDuration("EXTRACT_BACKOFF_BASE", 5*time.Second),
					BackoffMax:  getEnvAsDuration("EXTRACT_BACKOFF_MAX", 2*time.Minute),
					Timeout:     getEnvAsDuration("EXTRACT_TIMEOUT", 3*time.Minute),
				},
				constants.StagePersist: {
					Concurrency: getEnvAsInt("PERSIST_CONCURRENCY", 8),
					MaxAttempts: getEnvAsInt("PERSIST_MAX_ATTEMPTS", 3),
					BackoffBase: getEnvAsDuration("PERSIST_BACKOFF_BASE", 2*time.Second),
					BackoffMax:  getEnvAsDuration("PERSIST_BACKOFF_MAX", 30*time.Second),
					Timeout:     getEnvAsDuration("PERSIST_TIMEOUT", 30*time.Second),
				},
				constants.StageSync: {
					Concurrency: getEnvAsInt("SYNC_CONCURRENCY", 2),
					MaxAttempts: getEnvAsInt("SYNC_MAX_ATTEMPTS", 5),
					// longer base so platform rate limits recover between attempts
					BackoffBase: getEnvAsDuration("SYNC_BACKOFF_BASE", 15*time.Second),
					BackoffMax:  getEnvAsDuration("SYNC_BACKOFF_MAX", 5*time.Minute),
					Timeout:     getEnvAsDuration("SYNC_TIMEOUT", time.Minute),
				},
				constants.StageImage: {
					Concurrency: getEnvAsInt("IMAGE_CONCURRENCY", 4),
					MaxAttempts: getEnvAsInt("IMAGE_MAX_ATTEMPTS", 2),
					BackoffBase: getEnvAsDuration("IMAGE_BACKOFF_BASE", 3*time.Second),
					BackoffMax:  getEnvAsDuration("IMAGE_BACKOFF_MAX", time.Minute),
					Timeout:     getEnvAsDuration("IMAGE_TIMEOUT", 2*time.Minute),
				},
				constants.StageBroadcast: {
					Concurrency: getEnvAsInt("BROADCAST_CONCURRENCY", 8),
					MaxAttempts: getEnvAsInt("BROADCAST_MAX_ATTEMPTS", 2),
					BackoffBase: getEnvAsDuration("BROADCAST_BACKOFF_BASE", 500*time.Millisecond),
					BackoffMax:  getEnvAsDuration("BROADCAST_BACKOFF_MAX", 5*time.Second),
					Timeout:     getEnvAsDuration("BROADCAST_TIMEOUT", 10*time.Second),
				},
			},
			LowPriorityDelay:  getEnvAsDuration("LOW_PRIORITY_DELAY", 10*time.Second),
			BatchDelay:        getEnvAsDuration("BATCH_DELAY", time.Minute),
			LargePayloadBytes: getEnvAsInt("LARGE_PAYLOAD_BYTES", 512*1024),
			ReviewThresholds: map[string]float32{
				constants.StageExtract: getEnvAsFloat32("EXTRACT_REVIEW_THRESHOLD", 0.60),
			},
		},
		Collaborators: CollaboratorsConfig{
			ExtractorURL: getEnv("EXTRACTOR_URL", ""),
			SyncURL:      getEnv("PLATFORM_SYNC_URL", ""),
			ImageURL:     getEnv("IMAGE_SERVICE_URL", ""),
			CallTimeout:  getEnvAsDuration("COLLABORATOR_TIMEOUT", time.Minute),
		},
		Ingest: IngestConfig{
			WatchDir:   getEnv("WATCH_DIR", ""),
			ShopDomain: getEnv("WATCH_SHOP_DOMAIN", ""),
			Debounce:   getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
		},
		Health: HealthConfig{
			PollInterval:     getEnvAsDuration("HEALTH_POLL_INTERVAL", 30*time.Second),
			BacklogWarning:   getEnvAsInt("HEALTH_BACKLOG_WARNING", 100),
			FailureRateLimit: getEnvAsFloat64("HEALTH_FAILURE_RATE_LIMIT", 0.10),
			Retention:        getEnvAsDuration("QUEUE_RETENTION", 24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	for name, sc := range c.Pipeline.Stages {
		if sc.Concurrency <= 0 {
			return NewAppError("CONFIG_ERROR", "concurrency must be positive for stage "+name, ErrInvalidInput)
		}
		if sc.MaxAttempts <= 0 {
			return NewAppError("CONFIG_ERROR", "max attempts must be positive for stage "+name, ErrInvalidInput)
		}
	}
	if strings.TrimSpace(c.Redis.KeyPrefix) == "" {
		return NewAppError("CONFIG_ERROR", "REDIS_KEY_PREFIX must not be blank", ErrInvalidInput)
	}
	if c.Collaborators.ExtractorURL == "" {
		return NewAppError("CONFIG_ERROR", "EXTRACTOR_URL is required", ErrInvalidInput)
	}
	if c.Collaborators.SyncURL == "" {
		return NewAppError("CONFIG_ERROR", "PLATFORM_SYNC_URL is required", ErrInvalidInput)
	}
	if c.Ingest.WatchDir != "" && c.Ingest.ShopDomain == "" {
		return NewAppError("CONFIG_ERROR", "WATCH_SHOP_DOMAIN is required when WATCH_DIR is set", ErrInvalidInput)
	}
	return nil
}
