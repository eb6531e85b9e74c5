package detect

import (
	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/patterns"
)

// Starters tallies sentence-opener templates per (speaker, template) and
// flags pairs reaching StarterMinRepeats. A turn counts toward at most one
// template (first match wins); distinct templates are tallied independently.
func Starters(turns []dialogue.Turn) StarterReport {
	tallies := make(map[string]map[string]int)
	var speakerOrder []string
	starterOrder := make(map[string][]string) // per speaker, first-use order

	for _, t := range turns {
		name, ok := MatchStarter(t.Message)
		if !ok {
			continue
		}

		byStarter, seen := tallies[t.Speaker]
		if !seen {
			byStarter = make(map[string]int)
			tallies[t.Speaker] = byStarter
			speakerOrder = append(speakerOrder, t.Speaker)
		}
		if byStarter[name] == 0 {
			starterOrder[t.Speaker] = append(starterOrder[t.Speaker], name)
		}
		byStarter[name]++
	}

	rep := StarterReport{Tallies: tallies}
	for _, speaker := range speakerOrder {
		for _, name := range starterOrder[speaker] {
			if count := tallies[speaker][name]; count >= StarterMinRepeats {
				rep.Issues = append(rep.Issues, StarterIssue{
					Speaker: speaker,
					Starter: name,
					Count:   count,
				})
			}
		}
	}
	return rep
}

// MatchStarter tests a message against the starter templates in order and
// returns the name of the first match.
func MatchStarter(message string) (string, bool) {
	for _, p := range patterns.Starters {
		if p.Match.MatchString(message) {
			return p.Name, true
		}
	}
	return "", false
}
