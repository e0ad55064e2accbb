// Package services holds the command-level orchestration: one run reads the
// clipboard, classifies the payload, applies the admission policy, uploads
// and records the result. Each run is a single-pass state machine; no state
// is re-entered and nothing is cached between invocations.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/dmitrijs2005/clipdrop/internal/clipboard"
	"github.com/dmitrijs2005/clipdrop/internal/common"
	"github.com/dmitrijs2005/clipdrop/internal/config"
	"github.com/dmitrijs2005/clipdrop/internal/history"
	"github.com/dmitrijs2005/clipdrop/internal/logging"
	"github.com/dmitrijs2005/clipdrop/internal/models"
	"github.com/dmitrijs2005/clipdrop/internal/objectkey"
	"github.com/dmitrijs2005/clipdrop/internal/storage"
)

// Seams for tests.
var (
	newTransport = storage.NewTransport
	timeNow      = time.Now
)

// UploadService runs the clipboard-to-storage pipeline.
type UploadService struct {
	cfg     *config.Config
	clip    clipboard.ReadWriter
	history *history.Store
	keys    *objectkey.Generator
	log     logging.Logger
}

func NewUploadService(cfg *config.Config, clip clipboard.ReadWriter, hist *history.Store, log logging.Logger) *UploadService {
	return &UploadService{
		cfg:     cfg,
		clip:    clip,
		history: hist,
		keys:    objectkey.NewGenerator(),
		log:     log,
	}
}

// UploadResult reports a completed upload. HistoryRepaired is set when the
// persisted history failed schema validation and was rewritten clean as part
// of recording this upload.
type UploadResult struct {
	Record          models.UploadRecord
	HistoryRepaired bool
}

// candidate is the resolved upload payload.
type candidate struct {
	name     string
	ext      string
	data     []byte
	category classify.Category
}

// Run executes one upload. The configuration and admission policy are fully
// parsed before the clipboard is touched, and no network call happens before
// every policy gate has passed. All failures are classified (common.Failure);
// transport errors pass through verbatim.
func (s *UploadService) Run(ctx context.Context) (*UploadResult, error) {
	st := config.Normalize(s.cfg.Storage)
	if errs := config.Validate(st); len(errs) > 0 {
		return nil, common.ConfigurationError(errors.New(errs[0]))
	}

	maxMB, err := config.ParseMaxUploadSizeMB(s.cfg.MaxUploadSizeMB)
	if err != nil {
		return nil, common.ConfigurationError(err)
	}

	allowed := config.AllowedCategories(s.cfg.Categories)
	anyAllowed := false
	for _, ok := range allowed {
		if ok {
			anyAllowed = true
			break
		}
	}
	if !anyAllowed {
		return nil, common.PolicyError(errors.New("all categories are disabled, enable at least one category in preferences"))
	}

	snap, err := s.clip.Read()
	if err != nil {
		return nil, common.ClipboardError(err)
	}

	cand, err := resolveCandidate(snap)
	if err != nil {
		return nil, err
	}

	maxBytes := int64(maxMB) * 1024 * 1024
	if int64(len(cand.data)) > maxBytes {
		return nil, common.PolicyError(fmt.Errorf("file too large: %q exceeds the %d MB limit", cand.name, maxMB))
	}

	if !allowed[cand.category] {
		return nil, common.PolicyError(fmt.Errorf("uploads of category %q are disabled in preferences", cand.category))
	}

	key, err := s.keys.Key(cand.category, cand.ext)
	if err != nil {
		return nil, fmt.Errorf("generate object key: %w", err)
	}
	contentType := classify.ContentTypeForExtension(cand.ext)

	transport, err := newTransport(ctx, models.ProviderS3, st, storage.Options{Timeout: s.cfg.RequestTimeout})
	if err != nil {
		return nil, common.TransportError(err)
	}
	if err := transport.PutObject(ctx, st.Bucket, key, cand.data, contentType); err != nil {
		return nil, common.TransportError(err)
	}

	publicURL := objectkey.BuildPublicURL(st.PublicBaseURL, key)

	if err := s.clip.Write(publicURL); err != nil {
		// the upload itself succeeded, keep going
		s.log.Warn(ctx, "copy url to clipboard failed", "error", err)
	}

	record := models.UploadRecord{
		ID:            uuid.NewString(),
		Provider:      models.ProviderS3,
		Category:      cand.category,
		FileName:      cand.name,
		FileExtension: cand.ext,
		FileSizeBytes: int64(len(cand.data)),
		Key:           key,
		URL:           publicURL,
		CreatedAt:     timeNow().UTC(),
	}

	limit := config.HistoryLimit(s.cfg.HistoryLimitTag)
	_, repaired, err := s.history.Prepend(ctx, record, limit)
	if err != nil {
		// the remote object exists, so do not fail the run over bookkeeping
		s.log.Error(ctx, "record upload history failed", "error", err)
	}

	s.log.Info(ctx, "upload complete",
		"key", key, "category", record.Category, "size", record.FileSizeBytes)

	return &UploadResult{Record: record, HistoryRepaired: repaired}, nil
}

// resolveCandidate turns a clipboard snapshot into an upload candidate.
// Resolution order: file path, embedded image data URI (HTML first, then
// plain text), plain text as a generated .txt document.
func resolveCandidate(snap clipboard.Snapshot) (*candidate, error) {
	if snap.File != "" {
		return fileCandidate(clipboard.FilePathFromString(snap.File))
	}

	for _, src := range []string{snap.HTML, snap.Text} {
		if data, ext, ok := clipboard.DecodeImageDataURI(src); ok {
			return &candidate{
				name:     "clipboard-image." + ext,
				ext:      ext,
				data:     data,
				category: classify.CategoryImages,
			}, nil
		}
	}

	if snap.Text != "" {
		return &candidate{
			name:     "clipboard.txt",
			ext:      "txt",
			data:     []byte(snap.Text),
			category: classify.CategoryDocuments,
		}, nil
	}

	return nil, common.ClipboardError(errors.New("clipboard content not supported"))
}

func fileCandidate(path string) (*candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, common.ClipboardError(fmt.Errorf("cannot access file %q: %w", path, err))
	}
	if !info.Mode().IsRegular() {
		return nil, common.ClipboardError(fmt.Errorf("not a file: %q", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.ClipboardError(fmt.Errorf("cannot access file %q: %w", path, err))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		// image payloads are recoverable from their signature alone
		if sniffed, ok := classify.DetectImageExtension(data); ok {
			ext = sniffed
		}
	}

	return &candidate{
		name:     filepath.Base(path),
		ext:      ext,
		data:     data,
		category: classify.Classify(ext, data),
	}, nil
}
