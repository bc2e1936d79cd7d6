package config

import (
	"flag"
	"os"

	"github.com/meetly/meetly/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the account store file (default from Config)
//	-e string   directory for calendar exports (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "path of the account store file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for calendar exports")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
