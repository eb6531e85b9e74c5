package detect

import (
	"strings"

	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/patterns"
)

// Hollows flags generic acknowledgments from turns whose speaker label
// contains roleMarker (substring match, so "Gemini-2" matches "Gemini").
// A message is flagged at most once even if several templates match. An
// empty roleMarker disables the detector.
func Hollows(turns []dialogue.Turn, roleMarker string) []HollowIssue {
	if roleMarker == "" {
		return nil
	}

	var issues []HollowIssue
	for _, t := range turns {
		if !strings.Contains(t.Speaker, roleMarker) {
			continue
		}

		id, ok := MatchHollow(t.Message)
		if !ok {
			continue
		}

		issues = append(issues, HollowIssue{
			Line:      t.Line,
			Speaker:   t.Speaker,
			PatternID: id,
			Preview:   preview(t.Message, HollowPreviewLen),
		})
	}
	return issues
}

// MatchHollow tests a message against the hollow templates in order and
// returns the id of the first match.
func MatchHollow(message string) (string, bool) {
	for _, p := range patterns.Hollow {
		if p.Match.MatchString(message) {
			return p.ID, true
		}
	}
	return "", false
}

// preview returns the first maxLen bytes of a message, with an ellipsis
// appended when truncated.
func preview(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
