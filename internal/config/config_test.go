package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, false, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.HTTP.CertFileName)
	assert.Equal(t, "key.pem", cfg.HTTP.PrivateKeyFileName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "storefront", cfg.Database.Name)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, "no-reply@storefront.local", cfg.Email.From)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                  "8080",
				"HTTP_ENABLE_HTTPS":          "true",
				"HTTP_CERT_FILE_NAME":        "custom.pem",
				"HTTP_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.HTTP.Port)
				assert.Equal(t, true, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.HTTP.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.HTTP.PrivateKeyFileName)
			},
		},
		{
			name: "database config override",
			envVars: map[string]string{
				"MONGO_URI": "mongodb://db.internal:27017",
				"MONGO_DB":  "shop",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
				assert.Equal(t, "shop", cfg.Database.Name)
			},
		},
		{
			name: "jwt and email override",
			envVars: map[string]string{
				"JWT_SECRET":       "prod-secret",
				"SENDGRID_API_KEY": "SG.test",
				"SENDGRID_FROM":    "shop@example.com",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "prod-secret", cfg.JWT.Secret)
				assert.Equal(t, "SG.test", cfg.Email.APIKey)
				assert.Equal(t, "shop@example.com", cfg.Email.From)
			},
		},
		{
			name: "frontend url override",
			envVars: map[string]string{
				"FRONTEND_URL": "https://shop.example.com",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://shop.example.com", cfg.FrontendURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}
