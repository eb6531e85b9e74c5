// Package archive gives the CLI transparent zstd handling: compressed
// transcripts can be read and fixer output written without either side of
// the core engine knowing about compression.
package archive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Ext is the recognized compressed-transcript suffix.
const Ext = ".zst"

// IsCompressed reports whether path names a zstd-compressed file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, Ext)
}

// Open opens path for reading, decompressing transparently when the name
// ends in .zst.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if !IsCompressed(path) {
		return f, nil
	}

	decoder, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &decodeCloser{decoder: decoder, f: f}, nil
}

// Create creates path for writing, compressing transparently when the name
// ends in .zst.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	if !IsCompressed(path) {
		return f, nil
	}

	encoder, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	return &encodeCloser{encoder: encoder, f: f}, nil
}

type decodeCloser struct {
	decoder *zstd.Decoder
	f       *os.File
}

func (d *decodeCloser) Read(p []byte) (int, error) { return d.decoder.Read(p) }

func (d *decodeCloser) Close() error {
	d.decoder.Close()
	return d.f.Close()
}

type encodeCloser struct {
	encoder *zstd.Encoder
	f       *os.File
}

func (e *encodeCloser) Write(p []byte) (int, error) { return e.encoder.Write(p) }

func (e *encodeCloser) Close() error {
	if err := e.encoder.Close(); err != nil {
		e.f.Close()
		return fmt.Errorf("finalize compression: %w", err)
	}
	return e.f.Close()
}
