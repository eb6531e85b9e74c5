// Package watch re-runs the checker whenever a transcript in a watched
// directory changes.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options controls a watch loop.
type Options struct {
	Debounce   time.Duration
	Extensions []string // file suffixes to handle, e.g. [".txt"]
}

// Run watches dir and invokes onChange for each written or created transcript
// file, debouncing rapid saves. Blocks until the watcher fails or its event
// channel closes.
func Run(dir string, opts Options, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	last := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, opts.Extensions) {
				continue
			}
			now := time.Now()
			if t, seen := last[ev.Name]; seen && now.Sub(t) < opts.Debounce {
				continue
			}
			last[ev.Name] = now
			onChange(ev.Name)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

// relevant reports whether an event is a write or create of a file with a
// watched extension. Compressed transcripts (.txt.zst) match their inner
// extension too.
func relevant(ev fsnotify.Event, exts []string) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
		return false
	}

	name := ev.Name
	if strings.HasSuffix(name, ".zst") {
		name = strings.TrimSuffix(name, ".zst")
	}

	ext := filepath.Ext(name)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
