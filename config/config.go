package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Media host (S3-compatible object storage)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StoragePublicURL string
	StorageUseSSL    bool

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Seeded back-office account
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/carhire?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_PUBLIC_KEY", "carhire"),
		StorageSecretKey: getEnv("STORAGE_PRIVATE_KEY", "carhire-secret"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "kyc-documents"),
		StoragePublicURL: getEnv("STORAGE_PUBLIC_URL", "http://localhost:9000"),
		StorageUseSSL:    cast.ToBool(getEnv("STORAGE_USE_SSL", "false")),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     cast.ToInt(getEnv("SMTP_PORT", "2525")),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "bookings@carhire.example"),
		FromName:     getEnv("FROM_NAME", "CarHire"),

		AdminName:     getEnv("ADMIN_NAME", "Fleet Admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@carhire.example"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "ChangeMe123!"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
