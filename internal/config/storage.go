package config

import (
	"net/url"
	"strings"
)

// StorageConfig holds the user-supplied object storage settings. A
// configuration is either fully valid or rejected wholesale; callers must run
// Normalize and Validate before using any field.
type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// Normalize trims every field, defaults the endpoint scheme to https:// and
// strips trailing slashes from the endpoint and the public base URL. It is
// total: any input yields a normalized configuration.
func Normalize(c StorageConfig) StorageConfig {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	c.Region = strings.TrimSpace(c.Region)
	c.Bucket = strings.TrimSpace(c.Bucket)
	c.AccessKeyID = strings.TrimSpace(c.AccessKeyID)
	c.SecretAccessKey = strings.TrimSpace(c.SecretAccessKey)
	c.PublicBaseURL = strings.TrimSpace(c.PublicBaseURL)

	if c.Endpoint != "" && !hasHTTPScheme(c.Endpoint) {
		c.Endpoint = "https://" + c.Endpoint
	}
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")

	return c
}

// Validate returns the list of problems with an already-normalized
// configuration. The check order is fixed (endpoint, bucket, access key id,
// secret access key, public base URL) so the first reported error is
// deterministic; callers typically surface only the first message.
func Validate(c StorageConfig) []string {
	var errs []string

	switch {
	case c.Endpoint == "":
		errs = append(errs, "storage endpoint is not set")
	case !isAbsoluteHTTPURL(c.Endpoint):
		errs = append(errs, "storage endpoint is not a valid http(s) URL")
	}

	if c.Bucket == "" {
		errs = append(errs, "bucket name is not set")
	}
	if c.AccessKeyID == "" {
		errs = append(errs, "access key id is not set")
	}
	if c.SecretAccessKey == "" {
		errs = append(errs, "secret access key is not set")
	}

	switch {
	case c.PublicBaseURL == "":
		errs = append(errs, "public base URL is not set")
	case !isAbsoluteHTTPURL(c.PublicBaseURL):
		errs = append(errs, "public base URL is not a valid http(s) URL")
	}

	return errs
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isAbsoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
