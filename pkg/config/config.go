package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	ImageGen ImageGenConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	ResendAPIKey string
	// OwnerEmail contact form bildirimlerinin gönderileceği adres
	OwnerEmail string
}

type ImageGenConfig struct {
	APIURL string
	APIKey string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			OwnerEmail:   getEnv("CONTACT_NOTIFY_EMAIL", ""),
		},
		ImageGen: ImageGenConfig{
			APIURL: getEnv("IMAGE_API_URL", ""),
			APIKey: getEnv("IMAGE_API_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
