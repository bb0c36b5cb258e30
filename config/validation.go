package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable before
// the server starts. Only hard requirements are enforced; optional
// integrations (Redis, S3) validate lazily when first used.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET must be set")
	}
	if cfg.DBHost == "" {
		errors = append(errors, "DB_HOST must be set")
	}
	if cfg.DBName == "" {
		errors = append(errors, "DB_NAME must be set")
	}
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		errors = append(errors, "AWS_REGION must be set when S3_BUCKET_NAME is configured")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
