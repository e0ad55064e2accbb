package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is merged first without overriding variables
// that are already exported.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setIfPresent := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent(&cfg.Storage.Endpoint, "CLIPDROP_ENDPOINT")
	setIfPresent(&cfg.Storage.Region, "CLIPDROP_REGION")
	setIfPresent(&cfg.Storage.Bucket, "CLIPDROP_BUCKET")
	setIfPresent(&cfg.Storage.AccessKeyID, "CLIPDROP_ACCESS_KEY_ID")
	setIfPresent(&cfg.Storage.SecretAccessKey, "CLIPDROP_SECRET_ACCESS_KEY")
	setIfPresent(&cfg.Storage.PublicBaseURL, "CLIPDROP_PUBLIC_BASE_URL")
	setIfPresent(&cfg.MaxUploadSizeMB, "CLIPDROP_MAX_UPLOAD_SIZE_MB")
	setIfPresent(&cfg.HistoryLimitTag, "CLIPDROP_HISTORY_LIMIT")
}
