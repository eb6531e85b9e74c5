// Package detect implements the four dialogue-quality detectors: filler
// density, echo repetition, hollow responses, and repetitive starters.
// Findings are data, never errors.
package detect

// Detection thresholds. The checker and fixer share these so both agree on
// what counts as an issue.
const (
	// FillerWarnDensity is the per-speaker fillers-per-message ratio above
	// which an issue is emitted.
	FillerWarnDensity = 1.0
	// FillerInfoDensity is the lower, informational display tier. Not an
	// issue; only affects report listing.
	FillerInfoDensity = 0.3
	// EchoWindow is how many leading tokens of the current turn are compared.
	EchoWindow = 8
	// EchoMinOverlap is the overlap size at which an echo is flagged.
	EchoMinOverlap = 3
	// StarterMinRepeats is the per-(speaker, template) tally at which a
	// repetitive-starter issue is emitted.
	StarterMinRepeats = 3
	// HollowPreviewLen bounds the message preview on hollow issues.
	HollowPreviewLen = 100

	echoPreviewLen = 80
)

// SpeakerFillers holds per-speaker filler statistics.
type SpeakerFillers struct {
	Speaker   string         `json:"speaker"`
	Messages  int            `json:"messages"`
	Fillers   int            `json:"total_fillers"`
	Density   float64        `json:"density"`
	Breakdown map[string]int `json:"breakdown,omitempty"` // by pattern name
}

// FillerIssue flags a speaker whose filler density exceeds FillerWarnDensity.
type FillerIssue struct {
	Speaker string  `json:"speaker"`
	Density float64 `json:"density"`
}

// FillerReport is the filler detector's full output.
type FillerReport struct {
	Speakers []SpeakerFillers `json:"speakers"` // sorted by density desc
	Issues   []FillerIssue    `json:"issues"`   // speaker first-appearance order
}

// EchoIssue flags a turn that opens by restating the previous, different
// speaker's content words.
type EchoIssue struct {
	Line        int      `json:"line"`
	Speaker     string   `json:"speaker"`
	PrevSpeaker string   `json:"prev_speaker"`
	Words       []string `json:"echoed_words"`
	Preview     string   `json:"preview"`
}

// HollowIssue flags a generic acknowledgment from the configured role.
type HollowIssue struct {
	Line      int    `json:"line"`
	Speaker   string `json:"speaker"`
	PatternID string `json:"pattern"`
	Preview   string `json:"preview"`
}

// StarterIssue flags a speaker opening StarterMinRepeats or more turns with
// the same template.
type StarterIssue struct {
	Speaker string `json:"speaker"`
	Starter string `json:"starter"`
	Count   int    `json:"count"`
}

// StarterReport is the repetitive-starter detector's full output.
type StarterReport struct {
	Tallies map[string]map[string]int `json:"tallies,omitempty"` // speaker -> template -> count
	Issues  []StarterIssue            `json:"issues"`
}
