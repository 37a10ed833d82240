package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pet-hub/internal/platform/logger"
)

// Driver identifica el sustrato key-value.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFS       Driver = "fs"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverRedis    Driver = "redis"
	DriverS3       Driver = "s3"
	DriverRemote   Driver = "remote"
)

// Storage agrupa la configuración de todos los sustratos; solo se usa la del Driver activo.
type Storage struct {
	Driver Driver
	Prefix string // redis / s3

	DSN        string // postgres
	SQLitePath string
	Dir        string // fs

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool

	RemoteURL     string
	RemoteTimeout time.Duration
}

type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	Storage Storage
	Log     logger.Options
}

// Load lee la configuración del entorno. Si existe un .env en el cwd se carga
// primero (sin pisar variables ya definidas).
//
// Variables:
//   - PORT (default 8080), SHUTDOWN_TIMEOUT (default 10s)
//   - KV_DRIVER=memory|fs|sqlite|postgres|redis|s3|remote (default memory; postgres si hay DB_DSN)
//   - DB_DSN, SQLITE_PATH, KV_DIR, KV_PREFIX
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB
//   - S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_PATH_STYLE
//   - KV_REMOTE_URL, KV_REMOTE_TIMEOUT
//   - LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv arma la Config desde un lookup arbitrario (tests).
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port: get("PORT", "8080"),
		Log: logger.Options{
			Level:  logger.ParseLevel(getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(getenv("LOG_FORMAT")),
			App:    get("APP_NAME", "pet-hub"),
		},
	}

	var err error
	if cfg.ShutdownTimeout, err = parseDuration(get("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	st := Storage{
		DSN:           get("DB_DSN", ""),
		SQLitePath:    get("SQLITE_PATH", "pethub.db"),
		Dir:           get("KV_DIR", "./pethub-data"),
		Prefix:        get("KV_PREFIX", ""),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		S3Bucket:      get("S3_BUCKET", ""),
		S3Region:      get("S3_REGION", "us-east-1"),
		S3Endpoint:    get("S3_ENDPOINT", ""),
		S3PathStyle:   strings.EqualFold(get("S3_PATH_STYLE", "false"), "true"),
		RemoteURL:     get("KV_REMOTE_URL", ""),
	}
	if st.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}
	if st.RemoteTimeout, err = parseDuration(get("KV_REMOTE_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("KV_REMOTE_TIMEOUT: %w", err)
	}

	// Compat: si solo viene DB_DSN (sin driver), usamos Postgres.
	driver := Driver(strings.ToLower(get("KV_DRIVER", "")))
	if driver == "" {
		driver = DriverMemory
		if st.DSN != "" {
			driver = DriverPostgres
		}
	}
	st.Driver = driver
	cfg.Storage = st

	if err := cfg.Storage.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate revisa que el driver activo tenga lo que necesita.
func (s Storage) Validate() error {
	switch s.Driver {
	case DriverMemory, DriverFS, DriverSQLite, DriverRedis:
		return nil
	case DriverPostgres:
		if s.DSN == "" {
			return errors.New("DB_DSN required for postgres driver")
		}
	case DriverS3:
		if s.S3Bucket == "" {
			return errors.New("S3_BUCKET required for s3 driver")
		}
	case DriverRemote:
		if s.RemoteURL == "" {
			return errors.New("KV_REMOTE_URL required for remote driver")
		}
	default:
		return fmt.Errorf("unknown KV_DRIVER %q", s.Driver)
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}
