package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/clipdrop/internal/filex"
	"github.com/dmitrijs2005/clipdrop/internal/flagx"
	"github.com/dmitrijs2005/clipdrop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON (un)marshalling of the
// preferences file. It relies on timex.Duration so JSON can specify the
// request timeout either as a string like "30s" or as integer nanoseconds.
type JsonConfig struct {
	Endpoint        string         `json:"endpoint"`
	Region          string         `json:"region,omitempty"`
	Bucket          string         `json:"bucket"`
	AccessKeyID     string         `json:"access_key_id"`
	SecretAccessKey string         `json:"secret_access_key"`
	PublicBaseURL   string         `json:"public_base_url"`
	MaxUploadSizeMB string         `json:"max_upload_size_mb,omitempty"`
	HistoryLimit    string         `json:"history_limit,omitempty"`
	Categories      map[string]any `json:"categories,omitempty"`
	RequestTimeout  timex.Duration `json:"request_timeout,omitempty"`
}

// PreferencesPath resolves the preferences file location: an explicit
// -c/-config flag wins, otherwise the file lives in the state directory.
func PreferencesPath() (string, error) {
	if p := flagx.JsonConfigFlags(); p != "" {
		return p, nil
	}
	dir, err := filex.EnsureStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "preferences.json"), nil
}

// parseJSON overlays Config with values from the preferences file. A missing
// file is fine (fresh install); an unreadable or unparsable one is an error
// the caller surfaces, never a silent skip.
func parseJSON(cfg *Config) error {
	path, err := PreferencesPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read preferences %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse preferences %s: %w", path, err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.Storage.Endpoint, jc.Endpoint)
	overlay(&cfg.Storage.Region, jc.Region)
	overlay(&cfg.Storage.Bucket, jc.Bucket)
	overlay(&cfg.Storage.AccessKeyID, jc.AccessKeyID)
	overlay(&cfg.Storage.SecretAccessKey, jc.SecretAccessKey)
	overlay(&cfg.Storage.PublicBaseURL, jc.PublicBaseURL)
	overlay(&cfg.MaxUploadSizeMB, jc.MaxUploadSizeMB)
	overlay(&cfg.HistoryLimitTag, jc.HistoryLimit)

	if jc.Categories != nil {
		cfg.Categories = jc.Categories
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}

	return nil
}

// Save writes cfg to the preferences file with owner-only permissions.
func Save(cfg *Config, path string) error {
	jc := JsonConfig{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		Bucket:          cfg.Storage.Bucket,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
		MaxUploadSizeMB: cfg.MaxUploadSizeMB,
		HistoryLimit:    cfg.HistoryLimitTag,
		Categories:      cfg.Categories,
		RequestTimeout:  timex.Duration{Duration: cfg.RequestTimeout},
	}

	data, err := json.MarshalIndent(jc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write preferences %s: %w", path, err)
	}
	return nil
}
