package archive

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestIsCompressed(t *testing.T) {
	if !IsCompressed("session.txt.zst") {
		t.Error("session.txt.zst should be compressed")
	}
	if IsCompressed("session.txt") {
		t.Error("session.txt should not be compressed")
	}
}

func TestPlainRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	want := "Alice: hello\nBob: hi there\n"

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := io.WriteString(w, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// No compression on a plain path.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != want {
		t.Errorf("plain file altered on disk: %q", raw)
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt.zst")
	want := "Alice: hello\nBob: hi there\n"

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := io.WriteString(w, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) == want {
		t.Error("compressed file stored as plaintext")
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
