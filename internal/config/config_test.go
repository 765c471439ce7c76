package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "info" || cfg.Workers != 0 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Cache.Dir != "./tables" || cfg.Cache.DB != "./tables/tables.db" {
		t.Errorf("unexpected cache defaults %+v", cfg.Cache)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubecoord.toml")
	content := `
log_level = "debug"
workers = 4

[cache]
backend = "sqlite"
db = "/tmp/cube.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.Workers != 4 {
		t.Errorf("unexpected values %+v", cfg)
	}
	if cfg.Cache.Backend != BackendSQLite || cfg.Cache.DB != "/tmp/cube.db" {
		t.Errorf("unexpected cache values %+v", cfg.Cache)
	}
	if cfg.Cache.Dir != "./tables" {
		t.Errorf("unset keys should keep defaults, got dir %q", cfg.Cache.Dir)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CUBECOORD_CACHE_DIR", "/var/cache/cube")
	t.Setenv("CUBECOORD_WORKERS", "2")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.Dir != "/var/cache/cube" || cfg.Workers != 2 {
		t.Errorf("environment should override defaults, got %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), "/nonexistent/cubecoord.toml"); err == nil {
		t.Error("Expected an error for a missing explicit config file")
	}
}

func TestValidateBackend(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Backend: "redis"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for an unknown backend")
	}
}
