package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.Page != 1 || cfg.PageSize != 100 {
		t.Fatalf("paging = %d/%d, want 1/100", cfg.Page, cfg.PageSize)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Fatalf("FetchTimeout = %v, want 15s", cfg.FetchTimeout)
	}
	if cfg.Storage != "file" {
		t.Fatalf("Storage = %q, want file", cfg.Storage)
	}

	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if !strings.HasPrefix(cfg.LogFile, home) || !strings.HasSuffix(cfg.LogFile, "marquee.log") {
		t.Fatalf("LogFile = %q, want marquee.log under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_base = "  http://localhost:8080  "
page = 3
page_size = 25
fetch_timeout = "2s"
data_dir = "  ~/.marquee  "
storage = " SQLite "
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://localhost:8080" {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, "http://localhost:8080")
	}
	if cfg.Page != 3 || cfg.PageSize != 25 {
		t.Fatalf("paging = %d/%d, want 3/25", cfg.Page, cfg.PageSize)
	}
	if cfg.FetchTimeout != 2*time.Second {
		t.Fatalf("FetchTimeout = %v, want 2s", cfg.FetchTimeout)
	}
	if cfg.DataDir != filepath.Join(home, ".marquee") {
		t.Fatalf("DataDir = %q, want it under HOME %q", cfg.DataDir, home)
	}
	if cfg.Storage != "sqlite" {
		t.Fatalf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
api_base = "http://file.example"
page_size = 10
storage = "file"
`)
	logFile := filepath.Join(t.TempDir(), "custom.log")
	t.Setenv("MARQUEE_API_BASE", "http://env.example")
	t.Setenv("MARQUEE_PAGE_SIZE", "50")
	t.Setenv("MARQUEE_FETCH_TIMEOUT", "1m")
	t.Setenv("MARQUEE_STORAGE", "sqlite")
	t.Setenv("MARQUEE_LOG_FILE", logFile)
	t.Setenv("MARQUEE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://env.example" {
		t.Fatalf("APIBase = %q, want env value", cfg.APIBase)
	}
	if cfg.PageSize != 50 {
		t.Fatalf("PageSize = %d, want 50", cfg.PageSize)
	}
	if cfg.FetchTimeout != time.Minute {
		t.Fatalf("FetchTimeout = %v, want 1m", cfg.FetchTimeout)
	}
	if cfg.Storage != "sqlite" {
		t.Fatalf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.LogFile != logFile {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, logFile)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Fatalf("Level() = %v, want warn", cfg.Level())
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_base = "   "
storage = ""
fetch_timeout = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.Storage != defaultStorage {
		t.Fatalf("Storage = %q, want %q", cfg.Storage, defaultStorage)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{name: "invalid toml", body: `api_base = [`, want: "parse config"},
		{name: "bad duration", body: `fetch_timeout = "soon"`, want: "fetch_timeout"},
		{name: "negative duration", body: `fetch_timeout = "-1s"`, want: "fetch_timeout must be positive"},
		{name: "bad page", body: `page = -2`, want: "page must be"},
		{name: "bad page size", body: `page_size = -1`, want: "page_size must be"},
		{name: "unknown storage", body: `storage = "redis"`, want: "storage"},
		{name: "unknown level", body: `log_level = "loud"`, want: "log_level"},
		{name: "bad env int", env: map[string]string{"MARQUEE_PAGE_SIZE": "many"}, want: "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLevel_DefaultsToInfo(t *testing.T) {
	var cfg Config
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("Level() = %v, want info", cfg.Level())
	}
	cfg.LogLevel = "ERROR"
	if cfg.Level() != slog.LevelError {
		t.Fatalf("Level() = %v, want error", cfg.Level())
	}
}
