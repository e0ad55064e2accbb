package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/dmitrijs2005/clipdrop/internal/config"
	"github.com/dmitrijs2005/clipdrop/internal/models"
	"github.com/dmitrijs2005/clipdrop/internal/storage"
)

// newTransport is a seam so tests can stub out the bucket check.
var newTransport = storage.NewTransport

// prefs runs the interactive preferences editor. Storage settings are
// validated and verified against the bucket before being written; on a failed
// verification the user may still save explicitly.
func (a *App) prefs(ctx context.Context) int {
	fmt.Println("Storage configuration (empty keeps the current value):")

	sc := a.cfg.Storage
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Endpoint", &sc.Endpoint},
		{"Region", &sc.Region},
		{"Bucket", &sc.Bucket},
		{"Access key id", &sc.AccessKeyID},
	}
	for _, p := range prompts {
		v, err := GetTextWithDefault(a.reader, p.label, *p.dst, os.Stdout)
		if err != nil {
			fmt.Println("Error:", err)
			return 1
		}
		*p.dst = v
	}

	secret, err := GetSecret("Secret access key (empty keeps current)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	if secret != "" {
		sc.SecretAccessKey = secret
	}

	publicURL, err := GetTextWithDefault(a.reader, "Public base URL", sc.PublicBaseURL, os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	sc.PublicBaseURL = publicURL

	sc = config.Normalize(sc)
	if errs := config.Validate(sc); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println("Error:", e)
		}
		fmt.Println("Preferences not saved.")
		return 1
	}

	if !a.verifyBucket(ctx, sc) {
		return 1
	}

	maxSize, err := GetTextWithDefault(a.reader, "Max upload size (MB)", a.cfg.MaxUploadSizeMB, os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	if _, err := config.ParseMaxUploadSizeMB(maxSize); err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	limit, err := GetTextWithDefault(a.reader, "History limit (50, 100, 200, 500, unlimited)", a.cfg.HistoryLimitTag, os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	categories, err := a.promptCategories()
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	a.cfg.Storage = sc
	a.cfg.MaxUploadSizeMB = strings.TrimSpace(maxSize)
	a.cfg.HistoryLimitTag = strings.TrimSpace(limit)
	a.cfg.Categories = categories

	path, err := config.PreferencesPath()
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	if err := config.Save(a.cfg, path); err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	fmt.Println("Preferences saved to", path)
	return 0
}

// verifyBucket checks the bucket is reachable with the new settings. On
// failure the user decides whether to save anyway.
func (a *App) verifyBucket(ctx context.Context, sc config.StorageConfig) bool {
	t, err := newTransport(ctx, models.ProviderS3, sc, storage.Options{Timeout: a.cfg.RequestTimeout})
	if err == nil {
		err = t.HeadBucket(ctx, sc.Bucket)
	}
	if err == nil {
		fmt.Println("Bucket verified.")
		return true
	}

	fmt.Println("Bucket check failed:", err)
	answer, rerr := GetSimpleText(a.reader, "Save anyway? (y/N)", os.Stdout)
	if rerr != nil {
		fmt.Println("Error:", rerr)
		return false
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Preferences not saved.")
		return false
	}
	return true
}

// promptCategories asks a yes/no question per category and stores explicit
// booleans for every one, replacing whatever mixed values an older
// preferences file carried.
func (a *App) promptCategories() (map[string]any, error) {
	out := make(map[string]any, len(classify.Categories()))
	for _, cat := range classify.Categories() {
		def := "y"
		if v, ok := a.cfg.Categories[string(cat)]; ok && !allowsValue(v) {
			def = "n"
		}
		answer, err := GetTextWithDefault(a.reader, fmt.Sprintf("Allow %s uploads? (y/n)", cat), def, os.Stdout)
		if err != nil {
			return nil, err
		}
		out[string(cat)] = !strings.EqualFold(strings.TrimSpace(answer), "n")
	}
	return out, nil
}

func allowsValue(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return !strings.EqualFold(strings.TrimSpace(value), "false")
	}
	return true
}
