package dialogue

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reserved line prefixes in dialogue transcript files.
const (
	SectionPrefix = "=== "
	MetaPrefix    = "Experiment ID:"
	SystemPrefix  = "System:"
	Separator     = ": "
)

// ParseFile reads and parses a dialogue transcript file.
func ParseFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a line-oriented transcript from a reader. Blank lines, section
// markers, and reserved metadata lines never become Turns; section markers
// update the section attached to subsequent Turns. Lines without the
// "speaker: message" shape are silently dropped.
func Parse(r io.Reader) (*Transcript, error) {
	tr := &Transcript{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line

	var section *Section
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, SectionPrefix) {
			section = &Section{Line: lineNum, Label: line}
			continue
		}
		if strings.HasPrefix(line, MetaPrefix) || strings.HasPrefix(line, SystemPrefix) {
			continue
		}

		speaker, message, ok := SplitDialogue(line)
		if !ok {
			continue
		}

		tr.Turns = append(tr.Turns, Turn{
			Line:    lineNum,
			Speaker: speaker,
			Message: message,
			Section: section,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	tr.Lines = lineNum
	return tr, nil
}

// SplitDialogue splits a line on the first ": " separator into speaker and
// message. Returns ok=false for lines without the separator or with an empty
// speaker label.
func SplitDialogue(line string) (speaker, message string, ok bool) {
	i := strings.Index(line, Separator)
	if i < 0 {
		return "", "", false
	}
	speaker = strings.TrimSpace(line[:i])
	message = strings.TrimSpace(line[i+len(Separator):])
	if speaker == "" {
		return "", "", false
	}
	return speaker, message, true
}

// IsStructural reports whether a raw line is structural: blank, a section
// marker, or a reserved metadata line. Structural lines reset any carried
// previous-turn state in the fixer.
func IsStructural(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, SectionPrefix) ||
		strings.HasPrefix(trimmed, MetaPrefix) ||
		strings.HasPrefix(trimmed, SystemPrefix)
}
