package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel    int      `env:"LOG_LEVEL" envDefault:"0"`
	FrontendURL string   `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	HTTP        HTTP     `envPrefix:"HTTP_"`
	Database    Database `envPrefix:"MONGO_"`
	JWT         JWT      `envPrefix:"JWT_"`
	Email       Email    `envPrefix:"SENDGRID_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"5000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains MongoDB connection parameters.
type Database struct {
	URI  string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Name string `env:"DB" envDefault:"storefront"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// Email contains outgoing mail parameters.
type Email struct {
	APIKey string `env:"API_KEY"`
	From   string `env:"FROM" envDefault:"no-reply@storefront.local"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
