// Package report runs all four detectors over a parsed transcript and
// renders the combined result as terminal text or JSON.
package report

import (
	"fmt"
	"strings"

	"github.com/johns/dialogue-lint/internal/detect"
	"github.com/johns/dialogue-lint/internal/dialogue"
)

// displayCap bounds the echo and hollow listings in the text report. The
// underlying counts are unaffected.
const displayCap = 5

// Report holds the merged output of all detectors for one transcript.
type Report struct {
	File        string               `json:"file"`
	Turns       int                  `json:"turns"`
	Fillers     detect.FillerReport  `json:"fillers"`
	Echoes      []detect.EchoIssue   `json:"echoes"`
	Hollows     []detect.HollowIssue `json:"hollows"`
	Starters    detect.StarterReport `json:"starters"`
	TotalIssues int                  `json:"total_issues"`
}

// Build runs the detectors against a parsed transcript. The total issue
// count sums heterogeneous units: per-speaker density violations, per-turn
// echo and hollow events, and per-(speaker, template) starter violations.
// It is a compatibility count, not a normalized severity score.
func Build(file string, tr *dialogue.Transcript, roleMarker string) *Report {
	r := &Report{
		File:     file,
		Turns:    len(tr.Turns),
		Fillers:  detect.Fillers(tr.Turns),
		Echoes:   detect.Echoes(tr.Turns),
		Hollows:  detect.Hollows(tr.Turns, roleMarker),
		Starters: detect.Starters(tr.Turns),
	}
	r.TotalIssues = len(r.Fillers.Issues) + len(r.Echoes) + len(r.Hollows) + len(r.Starters.Issues)
	return r
}

// Format renders the human-readable report. Section order is fixed: header,
// filler analysis, echo patterns, hollow responses, starters, summary.
func (r *Report) Format() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	sep := strings.Repeat("-", 40)

	b.WriteString(rule + "\n")
	b.WriteString("DIALOGUE QUALITY REPORT\n")
	fmt.Fprintf(&b, "File: %s\n", r.File)
	fmt.Fprintf(&b, "Total messages analyzed: %d\n", r.Turns)
	b.WriteString(rule + "\n")

	b.WriteString("\n## FILLER WORD ANALYSIS\n")
	b.WriteString(sep + "\n")
	for _, s := range r.Fillers.Speakers {
		if s.Density <= detect.FillerInfoDensity {
			continue
		}
		fmt.Fprintf(&b, "  %s: %.2f fillers/message (%d total in %d msgs)\n",
			s.Speaker, s.Density, s.Fillers, s.Messages)
	}
	if len(r.Fillers.Issues) > 0 {
		b.WriteString("\n  HIGH FILLER DENSITY WARNINGS:\n")
		for _, issue := range r.Fillers.Issues {
			fmt.Fprintf(&b, "    - Speaker '%s' has high filler density: %.2f per message\n",
				issue.Speaker, issue.Density)
		}
	}

	b.WriteString("\n## ECHO-REPEATING PATTERNS\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "  Found %d instances of echo-repeating\n", len(r.Echoes))
	for i, issue := range r.Echoes {
		if i >= displayCap {
			break
		}
		fmt.Fprintf(&b, "  Line %d: %s echoed [%s]\n",
			issue.Line, issue.Speaker, strings.Join(issue.Words, ", "))
	}

	b.WriteString("\n## HOLLOW RESPONSES\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "  Found %d hollow acknowledgments\n", len(r.Hollows))
	for i, issue := range r.Hollows {
		if i >= displayCap {
			break
		}
		fmt.Fprintf(&b, "  Line %d: %q\n", issue.Line, issue.Preview)
	}

	b.WriteString("\n## REPETITIVE SENTENCE STARTERS\n")
	b.WriteString(sep + "\n")
	if len(r.Starters.Issues) > 0 {
		for _, issue := range r.Starters.Issues {
			fmt.Fprintf(&b, "  - Speaker '%s' starts with '%s' %d times\n",
				issue.Speaker, issue.Starter, issue.Count)
		}
	} else {
		b.WriteString("  No significant repetition detected\n")
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "SUMMARY: %d total quality issues detected\n", r.TotalIssues)
	b.WriteString(rule + "\n")

	return b.String()
}
