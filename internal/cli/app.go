// Package cli implements the clipdrop command surface: the one-shot upload
// command, the history browser and the preferences editor.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/clipdrop/internal/clipboard"
	"github.com/dmitrijs2005/clipdrop/internal/config"
	"github.com/dmitrijs2005/clipdrop/internal/filex"
	"github.com/dmitrijs2005/clipdrop/internal/history"
	"github.com/dmitrijs2005/clipdrop/internal/kv"
	"github.com/dmitrijs2005/clipdrop/internal/logging"
	"github.com/dmitrijs2005/clipdrop/internal/services"
)

type App struct {
	cfg     *config.Config
	history *history.Store
	uploads *services.UploadService
	clip    clipboard.ReadWriter
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureStateDir()
	if err != nil {
		return nil, err
	}

	db, err := kv.Open(ctx, filepath.Join(dir, "clipdrop.db"))
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	store := history.NewStore(kv.NewSQLiteStore(db))
	clip := clipboard.NewSystem()

	return &App{
		cfg:     cfg,
		history: store,
		uploads: services.NewUploadService(cfg, clip, store, log),
		clip:    clip,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Command extracts the subcommand from args, skipping global flags and their
// values.
func Command(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++ // skip the flag's value
			}
			continue
		}
		return arg
	}
	return ""
}

// Run dispatches the subcommand and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	switch Command(args) {
	case "upload":
		return a.upload(ctx)
	case "history":
		return a.browse(ctx)
	case "prefs":
		return a.prefs(ctx)
	case "", "help":
		usage()
		return 0
	default:
		fmt.Println("Unknown command:", Command(args))
		usage()
		return 2
	}
}

func usage() {
	fmt.Println(`clipdrop - push the clipboard to object storage

Usage:
  clipdrop upload     upload the current clipboard content, copy back the public URL
  clipdrop history    browse past uploads (copy, open, remove, clear, grid/list)
  clipdrop prefs      edit and verify the storage configuration
  clipdrop help       show this message

Flags:
  -c, -config path    preferences file (default: state directory)
  -e endpoint         override the storage endpoint
  -b bucket           override the bucket name`)
}
