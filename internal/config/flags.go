package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/clipdrop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   storage endpoint URL (default from Config)
//	-b string   bucket name (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage.Endpoint, "e", cfg.Storage.Endpoint, "storage endpoint URL")
	fs.StringVar(&cfg.Storage.Bucket, "b", cfg.Storage.Bucket, "bucket name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
