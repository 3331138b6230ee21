package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DevelopmentEnv = "development"
	ProductionEnv  = "production"
	TestingEnv     = "testing"
)

type Config struct {
	Host        string
	AppPort     string
	AppMode     string
	Environment string

	MaxContentLength   int64
	SessionLifetime    time.Duration
	RateLimitPerMinute int
	RateLimitEnabled   bool

	OpenAIAPIKey string
	OpenAIModel  string

	CORSAllowedOrigins []string
	FeatureModules     []string

	// TrustedProxies are the CIDRs allowed to set X-Forwarded-For. Empty
	// means the client address is always the TCP peer.
	TrustedProxies []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ShutdownTimeout time.Duration
}

// LoadConfig never fails: missing or unparsable values fall back to defaults.
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("APP_ENV", getEnv("FLASK_ENV", DevelopmentEnv))

	defaultMode := "debug"
	if env == ProductionEnv {
		defaultMode = "release"
	}

	return &Config{
		Host:               getEnv("HOST", "0.0.0.0"),
		AppPort:            getEnv("PORT", "5000"),
		AppMode:            getEnv("APP_MODE", defaultMode),
		Environment:        env,
		MaxContentLength:   getEnvAsInt64("MAX_CONTENT_LENGTH", 16*1024*1024),
		SessionLifetime:    getEnvAsDuration("SESSION_LIFETIME", 8*time.Hour),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 10),
		RateLimitEnabled:   getEnvAsBool("RATE_LIMIT_ENABLED", false),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		FeatureModules:     getEnvAsList("FEATURE_MODULES", []string{"chat"}),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.AppPort
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("8h") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return fallback
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
