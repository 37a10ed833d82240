package config

import (
	"testing"
	"time"

	"pet-hub/internal/platform/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Fatalf("expected memory driver, got %s", cfg.Storage.Driver)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if cfg.Log.Level != logger.Info || cfg.Log.Format != logger.FormatText {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestFromEnv_DSNSelectsPostgres(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DB_DSN": "postgres://localhost/pethub?sslmode=disable",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %s", cfg.Storage.Driver)
	}
}

func TestFromEnv_ExplicitDriverWins(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DB_DSN":      "postgres://localhost/pethub",
		"KV_DRIVER":   "SQLite",
		"SQLITE_PATH": "/tmp/x.db",
		"LOG_LEVEL":   "debug",
		"LOG_FORMAT":  "json",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if cfg.Log.Level != logger.Debug || cfg.Log.Format != logger.FormatJSON {
		t.Fatalf("unexpected log options: %+v", cfg.Log)
	}
}

func TestFromEnv_InvalidInputs(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":     {"KV_DRIVER": "mongo"},
		"s3 without bucket":  {"KV_DRIVER": "s3"},
		"remote without url": {"KV_DRIVER": "remote"},
		"bad redis db":       {"REDIS_DB": "zero"},
		"bad shutdown":       {"SHUTDOWN_TIMEOUT": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(envMap(env)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
