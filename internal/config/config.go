package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds marquee's runtime settings.
type Config struct {
	APIBase      string        `env:"MARQUEE_API_BASE"`
	Page         int           `env:"MARQUEE_PAGE"`
	PageSize     int           `env:"MARQUEE_PAGE_SIZE"`
	FetchTimeout time.Duration `env:"MARQUEE_FETCH_TIMEOUT"`
	DataDir      string        `env:"MARQUEE_DATA_DIR"`
	Storage      string        `env:"MARQUEE_STORAGE"`
	LogFile      string        `env:"MARQUEE_LOG_FILE"`
	LogLevel     string        `env:"MARQUEE_LOG_LEVEL"`
}

const (
	defaultConfigPath   = "~/.config/marquee/config.toml"
	defaultAPIBase      = "https://api.disneyapi.dev"
	defaultPage         = 1
	defaultPageSize     = 100
	defaultFetchTimeout = 15 * time.Second
	defaultDataDir      = "~/.local/share/marquee"
	defaultStorage      = "file"
	defaultLogFile      = "~/.local/state/marquee/marquee.log"
	defaultLogLevel     = "info"
)

// Default returns the settings used when no file or environment overrides
// exist. Paths are not yet expanded.
func Default() Config {
	return Config{
		APIBase:      defaultAPIBase,
		Page:         defaultPage,
		PageSize:     defaultPageSize,
		FetchTimeout: defaultFetchTimeout,
		DataDir:      defaultDataDir,
		Storage:      defaultStorage,
		LogFile:      defaultLogFile,
		LogLevel:     defaultLogLevel,
	}
}

// Load reads the config file at path (or the default location), applies
// MARQUEE_* environment overrides and validates the result. A missing file
// is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase      string `toml:"api_base"`
		Page         int    `toml:"page"`
		PageSize     int    `toml:"page_size"`
		FetchTimeout string `toml:"fetch_timeout"`
		DataDir      string `toml:"data_dir"`
		Storage      string `toml:"storage"`
		LogFile      string `toml:"log_file"`
		LogLevel     string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&cfg.APIBase, raw.APIBase)
	setString(&cfg.DataDir, raw.DataDir)
	setString(&cfg.Storage, raw.Storage)
	setString(&cfg.LogFile, raw.LogFile)
	setString(&cfg.LogLevel, raw.LogLevel)
	if raw.Page != 0 {
		cfg.Page = raw.Page
	}
	if raw.PageSize != 0 {
		cfg.PageSize = raw.PageSize
	}
	if v := strings.TrimSpace(raw.FetchTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: fetch_timeout: %w", err)
		}
		cfg.FetchTimeout = d
	}
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func (c *Config) normalize() error {
	c.APIBase = strings.TrimSpace(c.APIBase)
	if c.APIBase == "" {
		c.APIBase = defaultAPIBase
	}
	if c.Page < 1 {
		return fmt.Errorf("invalid config: page must be >= 1, got %d", c.Page)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("invalid config: page_size must be >= 1, got %d", c.PageSize)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("invalid config: fetch_timeout must be positive, got %s", c.FetchTimeout)
	}

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	switch c.Storage {
	case "":
		c.Storage = defaultStorage
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid config: storage %q (want file or sqlite)", c.Storage)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, p := range []*string{&c.DataDir, &c.LogFile} {
		expanded, err := expandPath(*p)
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		*p = expanded
	}
	return nil
}

// Level returns the configured slog level, info when unset.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
