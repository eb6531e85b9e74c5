// Package fix rewrites transcripts to reduce stylistic defects without
// eliminating them: excess fillers are trimmed down to one per message, and
// echo or hollow turns are flagged rather than rewritten. Output always has
// exactly one line per input line.
package fix

import (
	"regexp"
	"strings"

	"github.com/johns/dialogue-lint/internal/detect"
	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/patterns"
)

// Options controls a fixer pass.
type Options struct {
	// FlagOnly annotates issues inline ("[ECHO] speaker: ...") instead of
	// applying filler reduction to the emitted text. Reduction is still
	// counted in Stats either way.
	FlagOnly bool
	// RoleMarker scopes hollow detection; empty disables it.
	RoleMarker string
	// ResetCarryOnNonDialogue clears echo carry-state on content lines that
	// lack the dialogue separator. Off by default: a wrapped continuation
	// line then does not break echo tracking across it.
	ResetCarryOnNonDialogue bool
}

// Stats summarizes one fixer pass.
type Stats struct {
	LinesProcessed int
	FillersReduced int
	EchoFlagged    int
	HollowFlagged  int
}

// Lines rewrites a transcript line by line. Structural lines pass through
// verbatim and reset the echo carry-state; dialogue lines are reduced,
// checked, and re-emitted as "speaker: message".
func Lines(lines []string, opts Options) ([]string, Stats) {
	out := make([]string, 0, len(lines))
	var stats Stats
	var prevSpeaker, prevMessage string

	for _, raw := range lines {
		stats.LinesProcessed++

		if dialogue.IsStructural(raw) {
			out = append(out, raw)
			prevSpeaker, prevMessage = "", ""
			continue
		}

		speaker, message, ok := dialogue.SplitDialogue(strings.TrimSpace(raw))
		if !ok {
			out = append(out, raw)
			if opts.ResetCarryOnNonDialogue {
				prevSpeaker, prevMessage = "", ""
			}
			continue
		}

		reduced, changed := ReduceFillers(message)
		if changed {
			stats.FillersReduced++
		}

		outMessage := message
		if !opts.FlagOnly {
			outMessage = reduced
		}

		var flags []string
		if prevSpeaker != "" && prevSpeaker != speaker {
			if len(detect.EchoOverlap(prevMessage, message)) >= detect.EchoMinOverlap {
				stats.EchoFlagged++
				flags = append(flags, "[ECHO]")
			}
		}
		if opts.RoleMarker != "" && strings.Contains(speaker, opts.RoleMarker) {
			if _, hollow := detect.MatchHollow(message); hollow {
				stats.HollowFlagged++
				flags = append(flags, "[HOLLOW]")
			}
		}

		line := speaker + dialogue.Separator + outMessage
		if opts.FlagOnly && len(flags) > 0 {
			line = strings.Join(flags, " ") + " " + line
		}
		out = append(out, line)

		// Carry the original message, not the rewritten one, so the next
		// line's echo comparison matches what the checker sees.
		prevSpeaker, prevMessage = speaker, message
	}

	return out, stats
}

var (
	spaceRun  = regexp.MustCompile(`\s+`)
	dupComma  = regexp.MustCompile(`,\s*,`)
	dotComma  = regexp.MustCompile(`\.\s*,`)
	leadPunct = regexp.MustCompile(`^[\s,]+`)
)

// ReduceFillers trims a message's fillers down to exactly one occurrence. A
// message with a single filler is left alone; one natural hedge is not
// excessive. Removals follow the pattern-library order, applying each
// pattern's replacement (deletion or normalization).
func ReduceFillers(message string) (string, bool) {
	total := detect.CountFillers(message)
	if total <= 1 {
		return message, false
	}

	result := message
	for i := 0; i < total && detect.CountFillers(result) > 1; i++ {
		removed := false
		for _, p := range patterns.Fillers {
			loc := p.Match.FindStringIndex(result)
			if loc == nil {
				continue
			}
			result = result[:loc[0]] + p.Replacement + result[loc[1]:]
			removed = true
			break
		}
		if !removed {
			break
		}
	}

	result = cleanup(result)
	if result == message {
		return message, false
	}
	return result, true
}

// cleanup collapses the debris a removal leaves behind: whitespace runs,
// duplicated punctuation, and a leading comma from a removed leading filler.
func cleanup(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	for {
		t := dupComma.ReplaceAllString(s, ",")
		t = dotComma.ReplaceAllString(t, ".")
		if t == s {
			break
		}
		s = t
	}
	s = leadPunct.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
