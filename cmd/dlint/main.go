package main

import (
	"fmt"
	"os"

	"github.com/johns/dialogue-lint/internal/config"
	"github.com/johns/dialogue-lint/internal/doctor"
	"github.com/johns/dialogue-lint/internal/history"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch os.Args[1] {
	case "check":
		os.Exit(runCheck(cfg, os.Args[2:]))

	case "fix":
		os.Exit(runFix(cfg, os.Args[2:]))

	case "watch":
		os.Exit(runWatch(cfg, os.Args[2:]))

	case "history":
		os.Exit(runHistory(cfg, os.Args[2:]))

	case "doctor":
		rep := doctor.Run(cfg)
		fmt.Print(rep.Format())
		if rep.HasFailures() {
			os.Exit(1)
		}

	case "init":
		path, err := config.WriteDefault()
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("config: %s\n", config.CompressHome(path))

	case "version":
		fmt.Printf("dlint v%s (dialogue-lint)\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `dlint v%s - dialogue quality checker

Usage:
  dlint check <file|dir> [--json]             Analyze one transcript or a directory
  dlint fix <file> --output <path> [--flag-only]
                                              Rewrite a transcript, reducing fillers
  dlint watch <dir>                           Re-check transcripts on change
  dlint history [--limit N] [--path <file>]   Show recorded runs
  dlint doctor                                Check config, patterns, and history DB
  dlint init                                  Write a default config file
  dlint version                               Print version
  dlint help                                  Show this help

Exit codes for check: 0 clean run, 1 input not readable, 2 no dialogue found.
Transcripts ending in .zst are decompressed transparently.

Configuration: ~/.config/dialogue-lint/config.toml
`, version)
}

// recordRun writes a history row; bookkeeping failures never block output.
func recordRun(cfg config.Config, run history.Run) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: history: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "dlint: history: %v\n", err)
	}
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// positional returns the first argument that is neither a flag nor a flag's
// value.
func positional(args []string) string {
	skip := false
	for _, a := range args {
		if skip {
			skip = false
			continue
		}
		switch a {
		case "--output", "-o", "--limit", "--path":
			skip = true
			continue
		}
		if len(a) > 0 && a[0] == '-' {
			continue
		}
		return a
	}
	return ""
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "dlint: "+format+"\n", args...)
	os.Exit(1)
}
