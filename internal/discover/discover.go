// Package discover walks a directory tree for transcript files so the
// checker can run over a whole corpus in one invocation.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/johns/dialogue-lint/internal/archive"
)

// TranscriptFile is a discovered transcript on disk.
type TranscriptFile struct {
	Path       string
	Compressed bool  // true for .zst files
	ModTime    int64 // unix timestamp for sorting
}

// Discover walks basePath recursively and returns all files with a watched
// extension, sorted by modification time (oldest first). Compressed
// transcripts match their inner extension, so session.txt.zst is found when
// ".txt" is listed.
func Discover(basePath string, extensions []string) ([]TranscriptFile, error) {
	var results []TranscriptFile

	err := filepath.Walk(basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if info.IsDir() {
			return nil
		}
		if !hasExtension(path, extensions) {
			return nil
		}

		results = append(results, TranscriptFile{
			Path:       path,
			Compressed: archive.IsCompressed(path),
			ModTime:    info.ModTime().Unix(),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ModTime < results[j].ModTime
	})

	return results, nil
}

func hasExtension(path string, extensions []string) bool {
	name := strings.TrimSuffix(path, archive.Ext)
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
