package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

//nolint:gochecknoglobals // one-time .env load for the whole process
var once sync.Once

func init() {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("No .env file loaded")
		}
	})
}

const (
	defaultBackendURL  = "http://127.0.0.1:8000"
	defaultClientType  = "desktop"
	defaultHTTPTimeout = 30 * time.Second
)

// Config holds the settings the client needs to talk to the Kastaem backend.
type Config struct {
	BackendURL  string
	ClientType  string
	HTTPTimeout time.Duration
	DBPath      string
}

// New builds a Config from environment variables, falling back to defaults.
func New() *Config {
	return &Config{
		BackendURL:  getEnvOrDefault("KADMIN_BACKEND_URL", defaultBackendURL),
		ClientType:  getEnvOrDefault("KADMIN_CLIENT_TYPE", defaultClientType),
		HTTPTimeout: parseDurationOrDefault("KADMIN_HTTP_TIMEOUT", defaultHTTPTimeout),
		DBPath:      getEnvOrDefault("KADMIN_DB_PATH", defaultDBPath()),
	}
}

func defaultDBPath() string {
	return filepath.Join(os.Getenv("HOME"), ".kadmin/session.db")
}

func getEnvOrDefault(varName, def string) string {
	if v := os.Getenv(varName); v != "" {
		return v
	}
	return def
}

func parseDurationOrDefault(varName string, def time.Duration) time.Duration {
	if v := os.Getenv(varName); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Warn().Str("var", varName).Str("value", v).Msgf("Invalid duration, using default %s", def)
	}
	return def
}
