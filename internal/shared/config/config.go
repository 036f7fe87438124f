package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken     string         `koanf:"telegram_bot_token"`
	TelegramAPIURL       string         `koanf:"telegram_api_url"`
	HTTPPort             string         `koanf:"http_port"`
	AppEnv               AppEnv         `koanf:"app_env"`
	LogLevel             string         `koanf:"log_level"`
	DatabaseDriver       DatabaseDriver `koanf:"database_driver"`
	DatabaseDSN          string         `koanf:"database_dsn"`
	AdminCacheBackend    CacheBackend   `koanf:"admin_cache_backend"`
	AdminCacheTTLSeconds int            `koanf:"admin_cache_ttl_seconds"`
	RedisAddr            string         `koanf:"redis_addr"`
	RedisPassword        string         `koanf:"redis_password"`
	RedisDB              int            `koanf:"redis_db"`
	LogDebounceSeconds   int            `koanf:"log_debounce_seconds"`
	LogSinkRatePerSecond float64        `koanf:"log_sink_rate_per_second"`
	LogSinkBurst         int            `koanf:"log_sink_burst"`
	NATSURL              string         `koanf:"nats_url"`
	NATSSubjectPrefix    string         `koanf:"nats_subject_prefix"`
}

var defaults = map[string]any{
	"telegram_api_url":         "https://api.telegram.org",
	"http_port":                "8080",
	"app_env":                  "production",
	"log_level":                "info",
	"database_driver":          "sqlite",
	"database_dsn":             "./data/moderator.db",
	"admin_cache_backend":      "memory",
	"admin_cache_ttl_seconds":  300,
	"redis_addr":               "localhost:6379",
	"redis_db":                 0,
	"log_debounce_seconds":     15,
	"log_sink_rate_per_second": 1.0,
	"log_sink_burst":           5,
	"nats_subject_prefix":      "moderation.log",
}

func Load() (*Config, error) {
	// .env is optional; real environment variables still take precedence.
	_ = godotenv.Load()

	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	cfg.AppEnv = parseOr(k.String("app_env"), ParseAppEnv, AppEnvProduction)

	driver, err := ParseDatabaseDriver(k.String("database_driver"))
	if err != nil {
		return nil, oops.With("database_driver", k.String("database_driver")).Wrap(err)
	}
	cfg.DatabaseDriver = driver

	backend, err := ParseCacheBackend(k.String("admin_cache_backend"))
	if err != nil {
		return nil, oops.With("admin_cache_backend", k.String("admin_cache_backend")).Wrap(err)
	}
	cfg.AdminCacheBackend = backend

	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}

	return &cfg, nil
}

func parseOr[T any](s string, parse func(string) (T, error), fallback T) T {
	if s == "" {
		return fallback
	}
	if v, err := parse(s); err == nil {
		return v
	}
	return fallback
}

// AdminCacheTTL is the lifetime of a cached admin lookup
func (c *Config) AdminCacheTTL() time.Duration {
	if c.AdminCacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.AdminCacheTTLSeconds) * time.Second
}

// LogDebounce is the quiet period before a debounced audit entry is sent
func (c *Config) LogDebounce() time.Duration {
	if c.LogDebounceSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.LogDebounceSeconds) * time.Second
}

// SlogLevel maps log_level onto slog levels, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
