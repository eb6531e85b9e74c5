// Package patterns holds the static pattern tables shared by the checker and
// the fixer. Tables are process-wide read-only configuration; a pattern that
// fails to compile aborts at init, before any file is processed.
package patterns

import "regexp"

// FillerPattern is one lexical hedge or discourse marker. Match is a
// case-insensitive whole-token matcher used for both counting and removal.
// Replacement is what the fixer substitutes when reducing; empty means the
// occurrence is deleted outright.
type FillerPattern struct {
	Name        string
	Match       *regexp.Regexp
	Replacement string
}

// Fillers is the ordered filler table. Order is the fixer's removal priority;
// the checker counts all entries equally.
var Fillers = []FillerPattern{
	{Name: "you know", Match: regexp.MustCompile(`(?i)\byou know\b`), Replacement: ","},
	{Name: "I mean", Match: regexp.MustCompile(`(?i)\bI mean\b`)},
	{Name: "basically", Match: regexp.MustCompile(`(?i)\bbasically\b`)},
	{Name: "essentially", Match: regexp.MustCompile(`(?i)\bessentially\b`)},
	{Name: "perhaps", Match: regexp.MustCompile(`(?i)\bperhaps\b`), Replacement: "maybe"},
	{Name: "I guess", Match: regexp.MustCompile(`(?i)\bI guess\b`)},
	{Name: "I think", Match: regexp.MustCompile(`(?i)\bI think\b`)},
	{Name: "kinda", Match: regexp.MustCompile(`(?i)\bkinda\b`), Replacement: "kind of"},
	{Name: "like (filler)", Match: regexp.MustCompile(`(?i)\blike,`)},
	{Name: "um", Match: regexp.MustCompile(`(?i)\bum\b`)},
	{Name: "uh", Match: regexp.MustCompile(`(?i)\buh\b`)},
}

// HollowPattern is one generic-acknowledgment template. Templates are tried
// in order and the first match wins; ID is stable for reporting.
type HollowPattern struct {
	ID    string
	Match *regexp.Regexp
}

// Hollow is the ordered hollow-acknowledgment table. Anchoring varies per
// template (some match anywhere, some only at message start or end).
var Hollow = []HollowPattern{
	{ID: "sounds-good", Match: regexp.MustCompile(`(?i)(That|This) sounds (like a )?good( option)?`)},
	{ID: "sounds-practical", Match: regexp.MustCompile(`(?i)(That|This) sounds (very )?practical`)},
	{ID: "sounds-great", Match: regexp.MustCompile(`(?i)(That|This) sounds (like a )?great( idea)?`)},
	{ID: "plain-agree", Match: regexp.MustCompile(`(?i)Yes,? I agree\.?$`)},
	{ID: "that-is-good", Match: regexp.MustCompile(`(?i)^(Yes|Yeah),? that('s| is) (a )?(good|great|excellent) (point|idea|suggestion)`)},
	{ID: "good-point", Match: regexp.MustCompile(`(?i)^Good (point|idea|suggestion)`)},
	{ID: "very-good-point", Match: regexp.MustCompile(`(?i)^That's (a )?(very )?(good|great|excellent|valid|fair) (point|idea|concern)`)},
}

// StarterPattern is one sentence-opener template, anchored at message start.
type StarterPattern struct {
	Name  string
	Match *regexp.Regexp
}

// Starters is the ordered sentence-starter table; the first matching template
// per message wins.
var Starters = []StarterPattern{
	{Name: "So,", Match: regexp.MustCompile(`(?i)^So,`)},
	{Name: "Yeah,", Match: regexp.MustCompile(`(?i)^Yeah,`)},
	{Name: "Yes,", Match: regexp.MustCompile(`(?i)^Yes,`)},
	{Name: "Well,", Match: regexp.MustCompile(`(?i)^Well,`)},
	{Name: "Okay,", Match: regexp.MustCompile(`(?i)^Okay,`)},
	{Name: "I think", Match: regexp.MustCompile(`(?i)^I think`)},
	{Name: "Perhaps", Match: regexp.MustCompile(`(?i)^Perhaps`)},
}

// EchoStopwords are tokens excluded from echo overlap on both sides: articles,
// copulas, common pronouns, coordinators, and short affirmations. These are
// exactly the tokens common to ordinary acknowledgments, so a short "yeah,
// that works" never trips the echo detector.
var EchoStopwords = map[string]bool{
	"the": true, "a": true, "an": true,
	"is": true, "are": true, "was": true, "were": true,
	"to": true, "for": true,
	"and": true, "or": true, "but": true, "so": true,
	"yes": true, "yeah": true, "okay": true, "ok": true,
	"that": true, "this": true, "it": true,
	"i": true, "we": true, "you": true, "they": true,
}
