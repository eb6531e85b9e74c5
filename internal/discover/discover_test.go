package discover

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTranscript(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("Alice: hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverFindsTranscripts(t *testing.T) {
	base := t.TempDir()

	older := filepath.Join(base, "exp-a", "session1.txt")
	newer := filepath.Join(base, "exp-b", "session2.txt")
	writeTranscript(t, older, time.Now().Add(-time.Hour))
	writeTranscript(t, newer, time.Now())

	results, err := Discover(base, []string{".txt"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len = %d, want 2", len(results))
	}

	// Oldest first
	if results[0].Path != older {
		t.Errorf("first = %q, want %q (oldest first)", results[0].Path, older)
	}
	if results[1].Path != newer {
		t.Errorf("second = %q, want %q", results[1].Path, newer)
	}
}

func TestDiscoverExtensionFiltering(t *testing.T) {
	base := t.TempDir()

	wanted := filepath.Join(base, "exp", "session.txt")
	writeTranscript(t, wanted, time.Now())
	writeTranscript(t, filepath.Join(base, "exp", "notes.md"), time.Now())
	writeTranscript(t, filepath.Join(base, "exp", "settings.json"), time.Now())

	results, err := Discover(base, []string{".txt"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("len = %d, want 1 (only watched extensions)", len(results))
	}
	if results[0].Path != wanted {
		t.Errorf("Path = %q, want %q", results[0].Path, wanted)
	}
}

func TestDiscoverCompressedInnerExtension(t *testing.T) {
	base := t.TempDir()

	compressed := filepath.Join(base, "exp", "session.txt.zst")
	writeTranscript(t, compressed, time.Now())
	writeTranscript(t, filepath.Join(base, "exp", "dump.bin.zst"), time.Now())

	results, err := Discover(base, []string{".txt"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	if !results[0].Compressed {
		t.Error("compressed transcript not marked as compressed")
	}
}

func TestDiscoverEmptyExtensions(t *testing.T) {
	base := t.TempDir()
	writeTranscript(t, filepath.Join(base, "session.txt"), time.Now())

	results, err := Discover(base, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len = %d, want 0 with no extensions", len(results))
	}
}
