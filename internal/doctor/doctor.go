// Package doctor runs environment checks for the dlint CLI: config, pattern
// tables, history database, and watch settings.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johns/dialogue-lint/internal/config"
	"github.com/johns/dialogue-lint/internal/history"
	"github.com/johns/dialogue-lint/internal/patterns"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "dlint doctor\n\n  no checks ran\n"
	}

	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("dlint doctor\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports whether a config file exists at the resolved path.
// Defaults are valid, so a missing file is a warning, not a failure.
func CheckConfig() Result {
	path := filepath.Join(config.ConfigDir(), "config.toml")
	if _, err := os.Stat(path); err == nil {
		return Result{Name: "config", Status: Pass, Detail: config.CompressHome(path)}
	}
	return Result{Name: "config", Status: Warn, Detail: config.CompressHome(path) + " not found (defaults in use)"}
}

// CheckRoleMarker warns when hollow detection is disabled by an empty marker.
func CheckRoleMarker(marker string) Result {
	if marker == "" {
		return Result{Name: "role marker", Status: Warn, Detail: "empty (hollow detection disabled)"}
	}
	return Result{Name: "role marker", Status: Pass, Detail: fmt.Sprintf("%q", marker)}
}

// CheckPatterns reports the sizes of the static pattern tables. The tables
// compile at init, so reaching this check means they are valid.
func CheckPatterns() Result {
	detail := fmt.Sprintf("%d filler, %d hollow, %d starter, %d stop-words",
		len(patterns.Fillers), len(patterns.Hollow), len(patterns.Starters), len(patterns.EchoStopwords))
	return Result{Name: "patterns", Status: Pass, Detail: detail}
}

// CheckHistory verifies the history database opens and its schema applies.
func CheckHistory(hcfg config.HistoryConfig) Result {
	if !hcfg.Enabled {
		return Result{Name: "history", Status: Pass, Detail: "disabled"}
	}
	store, err := history.Open(hcfg.Path)
	if err != nil {
		return Result{Name: "history", Status: Fail, Detail: err.Error()}
	}
	store.Close()
	return Result{Name: "history", Status: Pass, Detail: config.CompressHome(hcfg.Path)}
}

// CheckWatch warns when the watch extension list is empty.
func CheckWatch(wcfg config.WatchConfig) Result {
	if len(wcfg.Extensions) == 0 {
		return Result{Name: "watch", Status: Warn, Detail: "no extensions configured"}
	}
	return Result{Name: "watch", Status: Pass,
		Detail: fmt.Sprintf("%s, debounce %dms", strings.Join(wcfg.Extensions, " "), wcfg.DebounceMS)}
}

// Run executes all checks against the given config and returns a report.
func Run(cfg config.Config) Report {
	var results []Result

	results = append(results, CheckConfig())
	results = append(results, CheckRoleMarker(cfg.RoleMarker))
	results = append(results, CheckPatterns())
	results = append(results, CheckHistory(cfg.History))
	results = append(results, CheckWatch(cfg.Watch))

	return Report{Results: results}
}
