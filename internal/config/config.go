package config

import (
	"os"
)

type Config struct {
	ServerPort    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	PublicBaseURL string
	UploadDir     string
	CheckoutURL   string
	DashboardURL  string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "blog"),
		DBPassword:    getEnv("DB_PASSWORD", "blog_dev_password"),
		DBName:        getEnv("DB_NAME", "blog"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		CheckoutURL:   getEnv("CHECKOUT_URL", "https://buy.stripe.com/test_9B614p8anbte7Hg4cc2Ry00"),
		DashboardURL:  getEnv("DASHBOARD_URL", "http://localhost:3000/dashboard"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
