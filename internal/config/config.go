package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr           string
	MongoURI       string
	MongoDatabase  string
	UserCollection string
	FormCollection string
	Timeout        time.Duration
	ServerLog      *log.Logger
	JWTSecret      []byte
	MasterEmail    string
	AllowedOrigins []string
}

// Load reads environment variables and returns a fully populated Config.
// 署名シークレットと master メールは必須。欠けたまま起動させない。
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	masterEmail := strings.TrimSpace(os.Getenv("MASTER_EMAIL"))
	if masterEmail == "" {
		log.Fatal("MASTER_EMAIL must be configured")
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	return Config{
		Addr:           envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:       envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:  envOrDefault("MONGO_DB", "form-review"),
		UserCollection: envOrDefault("USER_COLLECTION", "users"),
		FormCollection: envOrDefault("FORM_COLLECTION", "forms"),
		Timeout:        timeout,
		ServerLog:      log.New(os.Stdout, "[form-review-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:      []byte(jwtSecret),
		MasterEmail:    masterEmail,
		AllowedOrigins: allowedOrigins,
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
