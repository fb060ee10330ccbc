// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort    string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RedisURI      string
	JWTSecret     string

	// Image host (S3-compatible object storage)
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string

	// Uploads
	ImageMaxWidth      int
	ImageMaxMegapixels int
	MaxUploadMB        int

	CORSOrigins []string
	SiteURL     string
}

// Load reads configuration from .env file and environment variables.
// It fails when a required variable is missing or a numeric one is malformed.
func Load() (*Config, error) {
	// .env is optional; variables may be set directly
	_ = godotenv.Load()

	mongoURI, err := getEnvRequired("MONGO_URI")
	if err != nil {
		return nil, err
	}
	jwtSecret, err := getEnvRequired("JWT_SECRET")
	if err != nil {
		return nil, err
	}
	imageMaxWidth, err := getEnvInt("IMAGE_MAX_WIDTH", 1600)
	if err != nil {
		return nil, err
	}
	imageMaxMegapixels, err := getEnvInt("IMAGE_MAX_MEGAPIXELS", 40)
	if err != nil {
		return nil, err
	}
	maxUploadMB, err := getEnvInt("MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		MongoURI:           mongoURI,
		MongoDatabase:      getEnv("MONGO_DATABASE", "compliance"),
		RedisURI:           getEnv("REDIS_URI", "localhost:6379"),
		JWTSecret:          jwtSecret,
		S3Endpoint:         getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:        getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:        getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:           getEnv("S3_BUCKET", "site-images"),
		S3UseSSL:           getEnv("S3_USE_SSL", "false") == "true",
		ImageMaxWidth:      imageMaxWidth,
		ImageMaxMegapixels: imageMaxMegapixels,
		MaxUploadMB:        maxUploadMB,
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "")),
		SiteURL:            strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
	}
	cfg.S3PublicURL = strings.TrimRight(getEnv("S3_PUBLIC_URL", cfg.defaultPublicURL()), "/")

	return cfg, nil
}

// defaultPublicURL points at the bucket on the storage endpoint itself.
func (c *Config) defaultPublicURL() string {
	scheme := "http"
	if c.S3UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, c.S3Endpoint, c.S3Bucket)
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("environment variable %s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
