package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cplcheck/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".local", "share", "cplcheck"); cfg.History.Dir != want {
		t.Fatalf("unexpected history dir: got %q want %q", cfg.History.Dir, want)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Validation.StrictSequenceKinds {
		t.Fatal("expected permissive sequence kinds by default")
	}
	if !cfg.Validation.RequirePositiveEditRate {
		t.Fatal("expected positive edit rate check by default")
	}
	if cfg.History.ListLimit != config.Default().History.ListLimit {
		t.Fatalf("unexpected list limit: %d", cfg.History.ListLimit)
	}
}

func TestLoadReadsTOMLFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")

	cfg := config.Default()
	cfg.Logging.Format = "JSON"
	cfg.Validation.StrictSequenceKinds = true
	cfg.History.Dir = filepath.Join(dir, "history")
	cfg.History.ListLimit = 5
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loaded, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %s to be read, got %q (exists=%v)", path, resolved, exists)
	}
	if loaded.Logging.Format != "json" {
		t.Fatalf("expected normalized format, got %q", loaded.Logging.Format)
	}
	if !loaded.Validation.StrictSequenceKinds || loaded.History.ListLimit != 5 {
		t.Fatalf("unexpected loaded config: %+v", loaded)
	}
	if loaded.History.Dir != filepath.Join(dir, "history") {
		t.Fatalf("unexpected history dir %q", loaded.History.Dir)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	isolate(t)
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	isolate(t)
	historyDir := filepath.Join(t.TempDir(), "ledger")
	t.Setenv("CPLCHECK_LOG_LEVEL", "DEBUG")
	t.Setenv("CPLCHECK_STRICT_SEQUENCE_KINDS", "true")
	t.Setenv("CPLCHECK_HISTORY_DIR", historyDir)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level from env, got %q", cfg.Logging.Level)
	}
	if !cfg.Validation.StrictSequenceKinds {
		t.Fatal("expected strict sequence kinds from env")
	}
	if cfg.History.Dir != historyDir {
		t.Fatalf("expected history dir from env, got %q", cfg.History.Dir)
	}
}

func TestLogFileExpandsHome(t *testing.T) {
	home := isolate(t)
	t.Setenv("CPLCHECK_LOG_FILE", "~/logs/cplcheck.log")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "logs", "cplcheck.log"); cfg.Logging.File != want {
		t.Fatalf("expected log file %q, got %q", want, cfg.Logging.File)
	}
}

func TestDotEnvFileSeedsEnvironment(t *testing.T) {
	isolate(t)
	// godotenv never overrides variables that are already set, even to "".
	_ = os.Unsetenv("CPLCHECK_LOG_FORMAT")
	t.Cleanup(func() { _ = os.Unsetenv("CPLCHECK_LOG_FORMAT") })
	if err := os.WriteFile(".env", []byte("CPLCHECK_LOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format from .env, got %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"list limit", func(c *config.Config) { c.History.ListLimit = -1 }, "history.list_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %s error, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists || !cfg.History.Enabled {
		t.Fatalf("unexpected sample config: %+v", cfg)
	}
}

func TestEnsureDirectoriesCreatesHistoryDir(t *testing.T) {
	cfg := config.Default()
	cfg.History.Dir = filepath.Join(t.TempDir(), "a", "b")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	if info, err := os.Stat(cfg.History.Dir); err != nil || !info.IsDir() {
		t.Fatalf("expected history dir to exist: %v", err)
	}
}
