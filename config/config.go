// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"cricketscrapper/logging"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"

	NewsBackendBrowser = "browser"
	NewsBackendRSS     = "rss"
)

// Config stores runtime configuration for the service.
type Config struct {
	Port               string
	LogLevel           logging.Level
	CricbuzzBaseURL    string
	FetchTimeout       time.Duration
	FetchMode          string
	NewsBackend        string
	NewsRegionCode     string
	NewsRegion         RegionConfig
	NewsTimeout        time.Duration
	NewsCacheTTL       time.Duration
	RedisAddr          string
	SchemaFile         string
	CORSAllowedOrigins []string
}

func Load() (Config, error) {
	logLevel, err := logging.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse LOG_LEVEL")
	}

	fetchTimeout, err := positiveDuration("FETCH_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	newsTimeout, err := positiveDuration("NEWS_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	newsCacheTTL, err := time.ParseDuration(getEnv("NEWS_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse NEWS_CACHE_TTL")
	}
	if newsCacheTTL < 0 {
		return Config{}, errors.New("NEWS_CACHE_TTL must be >= 0")
	}

	fetchMode, err := oneOf("FETCH_MODE", FetchModeHTTP, FetchModeHTTP, FetchModeBrowser)
	if err != nil {
		return Config{}, err
	}
	newsBackend, err := oneOf("NEWS_BACKEND", NewsBackendBrowser, NewsBackendBrowser, NewsBackendRSS)
	if err != nil {
		return Config{}, err
	}

	regionCode := strings.ToLower(strings.TrimSpace(getEnv("NEWS_REGION", "us")))
	region, err := NewsRegion(regionCode)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse NEWS_REGION")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(getEnv("CRICBUZZ_BASE_URL", "https://www.cricbuzz.com")), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return Config{}, errors.Newf("CRICBUZZ_BASE_URL must be an http(s) URL, got %q", baseURL)
	}

	origins := splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return Config{
		Port:               strings.TrimSpace(getEnv("PORT", "3001")),
		LogLevel:           logLevel,
		CricbuzzBaseURL:    baseURL,
		FetchTimeout:       fetchTimeout,
		FetchMode:          fetchMode,
		NewsBackend:        newsBackend,
		NewsRegionCode:     regionCode,
		NewsRegion:         region,
		NewsTimeout:        newsTimeout,
		NewsCacheTTL:       newsCacheTTL,
		RedisAddr:          strings.TrimSpace(getEnv("REDIS_ADDR", "")),
		SchemaFile:         strings.TrimSpace(getEnv("SCHEMA_FILE", "")),
		CORSAllowedOrigins: origins,
	}, nil
}

// NewsCacheEnabled reports whether news results should be memoized.
func (c Config) NewsCacheEnabled() bool {
	return c.NewsCacheTTL > 0 && c.RedisAddr != ""
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	if d <= 0 {
		return 0, errors.Newf("%s must be > 0", key)
	}
	return d, nil
}

func oneOf(key, fallback string, allowed ...string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, fallback)))
	if !slices.Contains(allowed, value) {
		return "", errors.Newf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
