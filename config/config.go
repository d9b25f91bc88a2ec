package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER
const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Profile store selection
	StoreDriver string
	DBUrl       string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Admin listing credential. Empty disables the endpoint.
	AdminSecret string
	// CORS
	FrontendURL    string
	AllowedOrigins []string
	// Mini-app URL used as notification target and share links
	AppURL string
	// Frame notifications
	NotificationsEnabled bool
	NotificationTimeout  time.Duration
	// Hosts notification URLs from webhooks may point at (https only)
	NotificationHosts []string
	// Matching
	MatchThreshold int
	MatchLimit     int

	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreRedis)),
		DBUrl:       getEnv("DATABASE_URL", ""),

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		AdminSecret: getEnv("ADMIN_SECRET", ""),

		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", nil),

		AppURL: strings.TrimRight(getEnv("APP_URL", "http://localhost:3000"), "/"),

		NotificationsEnabled: getEnvBool("NOTIFICATIONS_ENABLED", true),
		NotificationTimeout:  getEnvDuration("NOTIFICATION_TIMEOUT", 5*time.Second),
		NotificationHosts:    getEnvList("NOTIFICATION_HOSTS", []string{"api.warpcast.com", "api.farcaster.xyz"}),

		MatchThreshold: getEnvInt("MATCH_THRESHOLD", 40),
		MatchLimit:     getEnvInt("MATCH_LIMIT", 3),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	// Sanity warnings, not fatal: memory store still lets the server boot
	switch cfg.StoreDriver {
	case StoreRedis:
		if cfg.UpstashRedisURL == "" {
			log.Println("WARNING: UPSTASH_REDIS_URL is missing. Profile store will fail to connect.")
		}
	case StorePostgres:
		if cfg.DBUrl == "" {
			log.Println("WARNING: DATABASE_URL is missing. Profile store will fail to connect.")
		}
	case StoreMemory:
		log.Println("WARNING: STORE_DRIVER=memory. Profiles are lost on restart.")
	default:
		log.Printf("WARNING: unknown STORE_DRIVER %q, falling back to %s\n", cfg.StoreDriver, StoreMemory)
		cfg.StoreDriver = StoreMemory
	}

	if cfg.AdminSecret == "" {
		log.Println("WARNING: ADMIN_SECRET not configured. Admin listing is disabled.")
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{cfg.FrontendURL}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
