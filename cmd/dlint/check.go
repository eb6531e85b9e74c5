package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/johns/dialogue-lint/internal/archive"
	"github.com/johns/dialogue-lint/internal/config"
	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/discover"
	"github.com/johns/dialogue-lint/internal/fix"
	"github.com/johns/dialogue-lint/internal/history"
	"github.com/johns/dialogue-lint/internal/report"
	"github.com/johns/dialogue-lint/internal/watch"
)

func runCheck(cfg config.Config, args []string) int {
	path := positional(args)
	if path == "" {
		fatal("usage: dlint check <transcript.txt|dir> [--json]")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return checkDir(cfg, path, hasFlag(args, "--json"))
	}

	rep, code := checkFile(cfg, path)
	if code != 0 {
		return code
	}

	if hasFlag(args, "--json") {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			fatal("encode report: %v", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(rep.Format())
	}

	recordRun(cfg, history.Run{
		Path:          path,
		Kind:          "check",
		Turns:         rep.Turns,
		TotalIssues:   rep.TotalIssues,
		FillerIssues:  len(rep.Fillers.Issues),
		EchoIssues:    len(rep.Echoes),
		HollowIssues:  len(rep.Hollows),
		StarterIssues: len(rep.Starters.Issues),
	})
	return 0
}

// checkDir runs the checker over every transcript found under dir. The exit
// code is the worst per-file code, so one unreadable file fails the run.
func checkDir(cfg config.Config, dir string, asJSON bool) int {
	files, err := discover.Discover(dir, cfg.Watch.Extensions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: scan %s: %v\n", dir, err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "dlint: no transcripts found under %s\n", dir)
		return 2
	}

	var reports []*report.Report
	worst := 0
	for _, f := range files {
		rep, code := checkFile(cfg, f.Path)
		if code != 0 {
			if code > worst {
				worst = code
			}
			continue
		}
		reports = append(reports, rep)
		recordRun(cfg, history.Run{
			Path:          f.Path,
			Kind:          "check",
			Turns:         rep.Turns,
			TotalIssues:   rep.TotalIssues,
			FillerIssues:  len(rep.Fillers.Issues),
			EchoIssues:    len(rep.Echoes),
			HollowIssues:  len(rep.Hollows),
			StarterIssues: len(rep.Starters.Issues),
		})
	}

	if asJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			fatal("encode reports: %v", err)
		}
		fmt.Println(string(data))
		return worst
	}

	for _, rep := range reports {
		fmt.Print(rep.Format())
		fmt.Println()
	}
	fmt.Printf("Checked %d transcripts under %s\n", len(reports), dir)
	return worst
}

// checkFile parses and analyzes one transcript. Returns a nil report with a
// non-zero exit code when the file is unreadable (1) or holds no dialogue (2).
func checkFile(cfg config.Config, path string) (*report.Report, int) {
	r, err := archive.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return nil, 1
	}

	tr, err := dialogue.Parse(r)
	r.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return nil, 1
	}

	if len(tr.Turns) == 0 {
		fmt.Fprintf(os.Stderr, "dlint: no dialogue found in %s\n", path)
		return nil, 2
	}

	return report.Build(filepath.Base(path), tr, cfg.RoleMarker), 0
}

func runFix(cfg config.Config, args []string) int {
	inPath := positional(args)
	outPath := flagValue(args, "--output")
	if outPath == "" {
		outPath = flagValue(args, "-o")
	}
	if inPath == "" || outPath == "" {
		fatal("usage: dlint fix <transcript.txt> --output <fixed.txt> [--flag-only]")
	}

	r, err := archive.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return 1
	}
	data, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: read %s: %v\n", inPath, err)
		return 1
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	fixed, stats := fix.Lines(lines, fix.Options{
		FlagOnly:                hasFlag(args, "--flag-only"),
		RoleMarker:              cfg.RoleMarker,
		ResetCarryOnNonDialogue: cfg.Fix.ResetCarryOnNonDialogue,
	})

	w, err := archive.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return 1
	}
	if _, err := io.WriteString(w, strings.Join(fixed, "\n")+"\n"); err != nil {
		w.Close()
		fmt.Fprintf(os.Stderr, "dlint: write %s: %v\n", outPath, err)
		return 1
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "dlint: close %s: %v\n", outPath, err)
		return 1
	}

	fmt.Printf("Processed %d lines\n", stats.LinesProcessed)
	fmt.Printf("  - Fillers reduced: %d\n", stats.FillersReduced)
	fmt.Printf("  - Echo patterns flagged: %d\n", stats.EchoFlagged)
	fmt.Printf("  - Hollow responses flagged: %d\n", stats.HollowFlagged)
	fmt.Printf("\nOutput written to: %s\n", outPath)

	recordRun(cfg, history.Run{
		Path:           inPath,
		Kind:           "fix",
		Turns:          stats.LinesProcessed,
		EchoIssues:     stats.EchoFlagged,
		HollowIssues:   stats.HollowFlagged,
		TotalIssues:    stats.EchoFlagged + stats.HollowFlagged,
		FillersReduced: stats.FillersReduced,
	})
	return 0
}

func runWatch(cfg config.Config, args []string) int {
	dir := positional(args)
	if dir == "" {
		fatal("usage: dlint watch <dir>")
	}

	fmt.Printf("watching %s\n", dir)
	err := watch.Run(dir, watch.Options{
		Debounce:   time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		Extensions: cfg.Watch.Extensions,
	}, func(path string) {
		rep, code := checkFile(cfg, path)
		if code != 0 {
			return
		}
		fmt.Printf("%s: %d issues (%d turns)\n", path, rep.TotalIssues, rep.Turns)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return 1
	}
	return 0
}

func runHistory(cfg config.Config, args []string) int {
	if !cfg.History.Enabled {
		fmt.Println("history is disabled in config")
		return 0
	}

	limit := 20
	if v := flagValue(args, "--limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			fatal("invalid --limit %q", v)
		}
		limit = n
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return 1
	}
	defer store.Close()

	runs, err := store.Recent(limit, flagValue(args, "--path"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return 1
	}
	summaries, err := store.PathSummaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlint: %v\n", err)
		return 1
	}

	fmt.Print(history.Format(runs, summaries))
	return 0
}
