package env

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr       string `env:"VITRINE_ADDR"`
	Port       string `env:"PORT" envDefault:"8080"`
	ContentDir string `env:"VITRINE_CONTENT_DIR" envDefault:"content"`
	Dev        bool   `env:"VITRINE_DEV"`
	Online     bool   `env:"VITRINE_ONLINE" envDefault:"true"`
	Stylesheet string `env:"VITRINE_STYLESHEET"`
	LogLevel   string `env:"VITRINE_LOG_LEVEL" envDefault:"info"`
	ExportDir  string `env:"VITRINE_EXPORT_DIR" envDefault:"dist"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":" + strings.TrimPrefix(cfg.Port, ":")
	}
	return cfg, nil
}

func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EffectiveLevel lowers the configured level to debug in dev mode.
func (c Config) EffectiveLevel() slog.Level {
	if c.Dev && c.Level() > slog.LevelDebug {
		return slog.LevelDebug
	}
	return c.Level()
}
