package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverBadger   = "badger"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Admin    AdminConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string

	// APILatency is the artificial delay every facade operation waits
	// before touching the store, a placeholder for a real network boundary.
	APILatency time.Duration
}

type StoreConfig struct {
	Driver     string
	BadgerPath string
	SeedFile   string
}

type DatabaseConfig struct {
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string
	PoolMaxConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	Secret string
}

// AdminConfig holds the reserved credential pair. The email is permanently
// bound to the admin role and can never be claimed by registration.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		APILatency:  durationEnv("API_LATENCY", 500*time.Millisecond),
	}

	cfg.Store = StoreConfig{
		Driver:     opt("STORE_DRIVER", StoreDriverBadger),
		BadgerPath: opt("BADGER_PATH", "data/talent-match"),
		SeedFile:   opt("SEED_FILE", ""),
	}

	cfg.Database = DatabaseConfig{
		DBHost:       opt("DB_HOST", ""),
		DBPort:       opt("DB_PORT", "5432"),
		DBName:       opt("DB_NAME", ""),
		DBUser:       opt("DB_USER", ""),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBSSLMode:    opt("DB_SSL_MODE", "disable"),
		PoolMaxConns: int32(intEnv("DB_POOL_MAX_CONNS", 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      durationEnv("REDIS_TTL", 600*time.Second),
	}

	cfg.Auth = AuthConfig{
		Secret: req("AUTH_SECRET"),
	}

	cfg.Admin = AdminConfig{
		Name:     opt("ADMIN_NAME", "Platform Admin"),
		Email:    req("ADMIN_EMAIL"),
		Password: req("ADMIN_PASSWORD"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.Store.Driver {
	case StoreDriverBadger, StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
