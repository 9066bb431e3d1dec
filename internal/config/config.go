package config

import (
	"os"
	"strconv"

	"gstinvoice/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Seller SellerConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds spreadsheet upload limits
type UploadConfig struct {
	MaxBytes int64
}

// SellerConfig is the letterhead block printed on every invoice. The
// defaults reproduce the issuing company the tool was built for.
type SellerConfig struct {
	Name    string
	GSTIN   string
	State   string
	Country string
	Phone   string
	Email   string
	Notes   string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 50*1024*1024),
		},
		Seller: SellerConfig{
			Name:    getEnvOrDefault("SELLER_NAME", "Anjanisutah 3Space PVT. LTD."),
			GSTIN:   getEnvOrDefault("SELLER_GSTIN", "24ABCCA7423R1ZC"),
			State:   getEnvOrDefault("SELLER_STATE", "Gujarat"),
			Country: getEnvOrDefault("SELLER_COUNTRY", "India"),
			Phone:   getEnvOrDefault("SELLER_PHONE", "6351932850"),
			Email:   getEnvOrDefault("SELLER_EMAIL", "3space@3spacecorp.com"),
			Notes:   getEnvOrDefault("SELLER_NOTES", "Competition registration fee is non-refundable."),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("upload size limit must be positive")
	}
	if config.Seller.Name == "" {
		return errors.ConfigInvalid("seller name is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
