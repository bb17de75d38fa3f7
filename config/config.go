package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Cache   CacheConfig
	View    ViewConfig
	Observ  ObservabilityConfig
}

type ServerConfig struct {
	Env string
}

type APIConfig struct {
	BaseURL      string
	AssetBaseURL string
	Timeout      time.Duration
}

type SessionConfig struct {
	Path string
}

type CacheConfig struct {
	StaleWindow time.Duration
}

type ViewConfig struct {
	PageSize int
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	MetricsPort    string
}

func Load() *Config {
	_ = godotenv.Load()

	timeoutSec, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "15"))
	staleSec, _ := strconv.Atoi(getEnv("CACHE_STALE_SECONDS", "300"))
	pageSize, _ := strconv.Atoi(getEnv("PRODUCTS_PAGE_SIZE", "8"))

	cfg := &Config{
		Server: ServerConfig{
			Env: getEnv("ENV", "development"),
		},
		API: APIConfig{
			// Fallbacks mirror the deployed defaults; override both in
			// production builds.
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:3001/api"),
			AssetBaseURL: getEnv("ASSET_BASE_URL", "https://assets.velora-cosmetics.com"),
			Timeout:      time.Duration(timeoutSec) * time.Second,
		},
		Session: SessionConfig{
			Path: getEnv("STOREFRONT_SESSION_PATH", defaultSessionPath()),
		},
		Cache: CacheConfig{
			StaleWindow: time.Duration(staleSec) * time.Second,
		},
		View: ViewConfig{
			PageSize: pageSize,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			MetricsPort:    getEnv("METRICS_PORT", "9090"),
		},
	}

	log.Printf("Config loaded: env=%s, api=%s", cfg.Server.Env, cfg.API.BaseURL)
	return cfg
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".storefront-session.json"
	}
	return filepath.Join(dir, "storefront", "session.json")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
