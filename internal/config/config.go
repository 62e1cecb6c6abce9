package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string
	RedisURL    string
	LogLevel    string

	EventWorkers      int
	EventPollInterval time.Duration
	MigrateOnStart    bool

	// PipelineTemplate is an optional YAML file replacing the default stage
	// catalog and transition table.
	PipelineTemplate string

	MutationRateLimit  int
	MutationRateWindow time.Duration
}

// ErrNoDatabase is returned alongside a usable Config when DATABASE_URL is
// unset; callers may fall back to in-memory storage.
var ErrNoDatabase = errors.New("DATABASE_URL not set")

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		RedisURL:         getenv("REDIS_URL", ""),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		PipelineTemplate: getenv("PIPELINE_TEMPLATE", ""),
	}
	cfg.EventWorkers = getenvInt("EVENT_WORKERS", 1, &errs)
	cfg.EventPollInterval = getenvDuration("EVENT_POLL_INTERVAL", 500*time.Millisecond, &errs)
	cfg.MigrateOnStart = getenvBool("MIGRATE_ON_START", true, &errs)
	cfg.MutationRateLimit = getenvInt("MUTATION_RATE_LIMIT", 60, &errs)
	cfg.MutationRateWindow = getenvDuration("MUTATION_RATE_WINDOW", time.Minute, &errs)

	if cfg.EventWorkers < 0 {
		errs = append(errs, fmt.Errorf("EVENT_WORKERS must not be negative"))
	}
	if cfg.EventPollInterval <= 0 {
		errs = append(errs, fmt.Errorf("EVENT_POLL_INTERVAL must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}

func getenvInt(key string, def int, errs *[]error) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return out
}

func getenvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	out, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return out
}

func getenvBool(key string, def bool, errs *[]error) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return out
}
