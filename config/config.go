package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting. It is built once in main from the
// environment and passed to constructors; nothing reads os.Getenv after Load.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisUser     string
	RedisPassword string

	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	GoogleClientID string
	OpenAIAPIKey   string
	OpenAIModel    string

	CacheTTL time.Duration
}

// Load builds a Config from the environment, applying defaults.
func Load() Config {
	return Config{
		Port: getEnv("PORT", "8083"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "innpilot"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisUser:     getEnv("REDIS_USER", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
		AccessTokenExpiry:  time.Duration(getEnvInt("ACCESS_TOKEN_MINUTES", 60)) * time.Minute,
		RefreshTokenExpiry: time.Duration(getEnvInt("REFRESH_TOKEN_MINUTES", 60*24*7)) * time.Minute,

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4"),

		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
