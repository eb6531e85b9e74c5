package detect

import (
	"regexp"
	"strings"

	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/patterns"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Echoes flags turns whose opening restates content words from the
// immediately preceding, different-speaker turn. Same-speaker pairs are
// skipped, and a section boundary resets the comparison.
func Echoes(turns []dialogue.Turn) []EchoIssue {
	var issues []EchoIssue

	for i := 1; i < len(turns); i++ {
		prev, curr := turns[i-1], turns[i]

		if prev.Section != curr.Section {
			continue
		}
		if prev.Speaker == curr.Speaker {
			continue
		}

		overlap := EchoOverlap(prev.Message, curr.Message)
		if len(overlap) < EchoMinOverlap {
			continue
		}

		issues = append(issues, EchoIssue{
			Line:        curr.Line,
			Speaker:     curr.Speaker,
			PrevSpeaker: prev.Speaker,
			Words:       overlap,
			Preview:     preview(curr.Message, echoPreviewLen),
		})
	}

	return issues
}

// EchoOverlap returns the tokens from the current message's leading window
// that also appear in the previous message, with stop-words excluded on both
// sides. The fixer calls this too, so checker and fixer agree on what an
// echo is.
func EchoOverlap(prevMessage, currMessage string) []string {
	curr := tokens(currMessage)
	if len(curr) > EchoWindow {
		curr = curr[:EchoWindow]
	}

	prevSet := make(map[string]bool)
	for _, w := range tokens(prevMessage) {
		if !patterns.EchoStopwords[w] {
			prevSet[w] = true
		}
	}

	var overlap []string
	for _, w := range curr {
		if patterns.EchoStopwords[w] {
			continue
		}
		if prevSet[w] {
			overlap = append(overlap, w)
		}
	}
	return overlap
}

// tokens splits a message into lower-cased word tokens.
func tokens(s string) []string {
	return wordPattern.FindAllString(strings.ToLower(s), -1)
}
