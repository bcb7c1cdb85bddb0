package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed by reference into the
// components that need it. The transformation pipeline itself takes no
// configuration.
type Config struct {
	Port        string
	DatabaseURL string

	OpenAIKey   string
	OpenAIModel string

	R2Endpoint  string
	R2AccessKey string
	R2SecretKey string
	R2Bucket    string
	R2BaseURL   string
	R2Prefix    string

	BannerDir string

	AllowOrigins []string
}

// Load reads .env (outside production) and the environment.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:        getenv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("OPENAI_MODEL"),

		R2Endpoint:  os.Getenv("R2_ENDPOINT"),
		R2AccessKey: os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey: os.Getenv("R2_SECRET_KEY"),
		R2Bucket:    os.Getenv("R2_BUCKET_NAME"),
		R2BaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		R2Prefix:    os.Getenv("R2_PREFIX"),

		BannerDir: os.Getenv("BANNER_DIR"),

		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
	return cfg
}

// HasSink reports whether publishing is configured.
func (c *Config) HasSink() bool {
	return c.R2Endpoint != "" && c.R2Bucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
