package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
)

// DefaultMaxUploadSizeMB applies when the preference is unset.
const DefaultMaxUploadSizeMB = 25

// defaultHistoryLimit applies when the history-limit tag is unset or
// unrecognized.
const defaultHistoryLimit = 100

// ParseMaxUploadSizeMB parses the max-upload-size preference. The value must
// be a positive integer number of megabytes; an empty value falls back to the
// default. Anything else is a hard error, never a silent fallback.
func ParseMaxUploadSizeMB(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultMaxUploadSizeMB, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("max upload size must be a positive integer (MB), got %q", raw)
	}
	return n, nil
}

// AllowedCategories derives the admission set from raw per-category
// preference values. A category is denied only by an explicit boolean false
// or the case-insensitive string "false"; absent or any other value allows.
// The asymmetry is deliberate: older preference schemas had no category
// checkboxes, and users who never configured them keep every category.
func AllowedCategories(raw map[string]any) map[classify.Category]bool {
	allowed := make(map[classify.Category]bool, len(classify.Categories()))
	for _, cat := range classify.Categories() {
		v, present := raw[string(cat)]
		allowed[cat] = !(present && isExplicitFalse(v))
	}
	return allowed
}

func isExplicitFalse(v any) bool {
	switch value := v.(type) {
	case bool:
		return !value
	case string:
		return strings.EqualFold(strings.TrimSpace(value), "false")
	}
	return false
}

// HistoryLimit maps the history-limit preference tag to a record count.
// Zero means unbounded. Unknown tags fall back to the default.
func HistoryLimit(tag string) int {
	switch strings.TrimSpace(tag) {
	case "50":
		return 50
	case "100":
		return 100
	case "200":
		return 200
	case "500":
		return 500
	case "unlimited":
		return 0
	}
	return defaultHistoryLimit
}
