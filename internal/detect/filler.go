package detect

import (
	"sort"
	"strings"

	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/patterns"
)

// Fillers counts filler occurrences per speaker and flags speakers whose
// density exceeds FillerWarnDensity. Every speaker with at least one message
// appears in the stats, fillers or not.
func Fillers(turns []dialogue.Turn) FillerReport {
	messages := make(map[string]int)
	breakdowns := make(map[string]map[string]int)
	var order []string // speakers in first-appearance order

	for _, t := range turns {
		if _, seen := messages[t.Speaker]; !seen {
			order = append(order, t.Speaker)
		}
		messages[t.Speaker]++

		for _, p := range patterns.Fillers {
			n := len(p.Match.FindAllStringIndex(t.Message, -1))
			if n == 0 {
				continue
			}
			b, ok := breakdowns[t.Speaker]
			if !ok {
				b = make(map[string]int)
				breakdowns[t.Speaker] = b
			}
			b[p.Name] += n
		}
	}

	var rep FillerReport
	for _, speaker := range order {
		total := 0
		for _, n := range breakdowns[speaker] {
			total += n
		}

		density := 0.0
		if messages[speaker] > 0 {
			density = float64(total) / float64(messages[speaker])
		}

		rep.Speakers = append(rep.Speakers, SpeakerFillers{
			Speaker:   speaker,
			Messages:  messages[speaker],
			Fillers:   total,
			Density:   density,
			Breakdown: breakdowns[speaker],
		})

		if density > FillerWarnDensity {
			rep.Issues = append(rep.Issues, FillerIssue{Speaker: speaker, Density: density})
		}
	}

	// Display order: highest density first, name as tiebreak.
	sort.Slice(rep.Speakers, func(i, j int) bool {
		if rep.Speakers[i].Density != rep.Speakers[j].Density {
			return rep.Speakers[i].Density > rep.Speakers[j].Density
		}
		return strings.ToLower(rep.Speakers[i].Speaker) < strings.ToLower(rep.Speakers[j].Speaker)
	})

	return rep
}

// CountFillers returns the total filler occurrences in a single message.
func CountFillers(message string) int {
	total := 0
	for _, p := range patterns.Fillers {
		total += len(p.Match.FindAllStringIndex(message, -1))
	}
	return total
}
