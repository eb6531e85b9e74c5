package fix

import (
	"strings"
	"testing"

	"github.com/johns/dialogue-lint/internal/detect"
	"github.com/johns/dialogue-lint/internal/dialogue"
	"github.com/johns/dialogue-lint/internal/report"
)

func defaultOpts() Options {
	return Options{RoleMarker: "Gemini"}
}

func TestLines_LineCountInvariant(t *testing.T) {
	input := []string{
		"=== Experiment 1 ===",
		"Experiment ID: exp-001",
		"",
		"Alice: I mean, basically, you know, I think we should go.",
		"a wrapped continuation line",
		"Gemini: That sounds like a good idea.",
		"System: session closed",
	}
	out, stats := Lines(input, defaultOpts())
	if len(out) != len(input) {
		t.Fatalf("output lines = %d, want %d", len(out), len(input))
	}
	if stats.LinesProcessed != len(input) {
		t.Errorf("lines processed = %d, want %d", stats.LinesProcessed, len(input))
	}
}

func TestLines_StructuralVerbatim(t *testing.T) {
	input := []string{
		"=== Experiment 1 ===",
		"",
		"System: session closed",
		"no separator narration",
	}
	out, _ := Lines(input, defaultOpts())
	for i := range input {
		if out[i] != input[i] {
			t.Errorf("line %d rewritten: %q -> %q", i, input[i], out[i])
		}
	}
}

func TestReduceFillers_FourDownToOne(t *testing.T) {
	msg := "I mean, basically, you know, I think we should go."
	if n := detect.CountFillers(msg); n != 4 {
		t.Fatalf("fixture count = %d, want 4", n)
	}

	got, changed := ReduceFillers(msg)
	if !changed {
		t.Fatal("expected a reduction")
	}
	if got != "I think we should go." {
		t.Errorf("got %q", got)
	}
	if n := detect.CountFillers(got); n != 1 {
		t.Errorf("remaining fillers = %d, want exactly 1", n)
	}
}

func TestReduceFillers_SingleFillerKept(t *testing.T) {
	msg := "You know, this is fine."
	got, changed := ReduceFillers(msg)
	if changed {
		t.Errorf("single filler should be left alone, got %q", got)
	}
}

func TestReduceFillers_NoFillers(t *testing.T) {
	msg := "The parser handles sections now."
	if got, changed := ReduceFillers(msg); changed || got != msg {
		t.Errorf("got (%q, %v)", got, changed)
	}
}

func TestReduceFillers_Normalization(t *testing.T) {
	got, changed := ReduceFillers("Perhaps we should go, perhaps not.")
	if !changed {
		t.Fatal("expected a reduction")
	}
	if got != "maybe we should go, perhaps not." {
		t.Errorf("got %q", got)
	}
}

func TestReduceFillers_LeadingCommaStripped(t *testing.T) {
	got, changed := ReduceFillers("I mean, basically the cache is stale.")
	if !changed {
		t.Fatal("expected a reduction")
	}
	if strings.HasPrefix(got, ",") || strings.HasPrefix(got, " ") {
		t.Errorf("leading debris not cleaned: %q", got)
	}
}

func TestLines_FixModeReducesMessage(t *testing.T) {
	input := []string{"Dana: I mean, basically, you know, I think we should go."}
	out, stats := Lines(input, defaultOpts())
	if stats.FillersReduced != 1 {
		t.Errorf("fillers reduced = %d, want 1", stats.FillersReduced)
	}
	if out[0] != "Dana: I think we should go." {
		t.Errorf("got %q", out[0])
	}
}

func TestLines_FlagOnlyKeepsText(t *testing.T) {
	msg := "the migration plan needs another review cycle"
	input := []string{
		"Alice: " + msg,
		"Bob: " + msg,
		"Gemini: That sounds like a good idea.",
	}
	opts := defaultOpts()
	opts.FlagOnly = true
	out, stats := Lines(input, opts)

	if out[0] != input[0] {
		t.Errorf("unflagged line changed: %q", out[0])
	}
	if out[1] != "[ECHO] Bob: "+msg {
		t.Errorf("echo flag missing: %q", out[1])
	}
	if out[2] != "[HOLLOW] Gemini: That sounds like a good idea." {
		t.Errorf("hollow flag missing: %q", out[2])
	}
	if stats.EchoFlagged != 1 || stats.HollowFlagged != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestLines_FixModeOmitsFlags(t *testing.T) {
	msg := "the migration plan needs another review cycle"
	input := []string{
		"Alice: " + msg,
		"Bob: " + msg,
	}
	out, stats := Lines(input, defaultOpts())
	if strings.Contains(out[1], "[ECHO]") {
		t.Errorf("flags must not appear in fix mode: %q", out[1])
	}
	if stats.EchoFlagged != 1 {
		t.Errorf("echo flagged = %d, want 1 (counted, not printed)", stats.EchoFlagged)
	}
}

func TestLines_StructuralResetsCarry(t *testing.T) {
	msg := "the migration plan needs another review cycle"
	input := []string{
		"Alice: " + msg,
		"=== Experiment 2 ===",
		"Bob: " + msg,
	}
	_, stats := Lines(input, defaultOpts())
	if stats.EchoFlagged != 0 {
		t.Errorf("echo flagged = %d, want 0 across section marker", stats.EchoFlagged)
	}
}

func TestLines_CarryAcrossNonDialogue(t *testing.T) {
	msg := "the migration plan needs another review cycle"
	input := []string{
		"Alice: " + msg,
		"a wrapped continuation line",
		"Bob: " + msg,
	}

	_, stats := Lines(input, defaultOpts())
	if stats.EchoFlagged != 1 {
		t.Errorf("echo flagged = %d, want 1 (carry preserved by default)", stats.EchoFlagged)
	}

	opts := defaultOpts()
	opts.ResetCarryOnNonDialogue = true
	_, stats = Lines(input, opts)
	if stats.EchoFlagged != 0 {
		t.Errorf("echo flagged = %d, want 0 with reset option", stats.EchoFlagged)
	}
}

func TestLines_EchoComparesOriginalMessage(t *testing.T) {
	// Alice's "basically" is removed by filler reduction, but Bob's echo
	// must still be judged against her original wording.
	input := []string{
		"Alice: You know, we basically need a parser redesign, essentially now.",
		"Bob: Basically a parser redesign, you bet.",
	}
	out, stats := Lines(input, defaultOpts())
	if strings.Contains(out[0], "basically") {
		t.Fatalf("fixture expects 'basically' removed from %q", out[0])
	}
	if stats.EchoFlagged != 1 {
		t.Errorf("echo flagged = %d, want 1 (compared against original)", stats.EchoFlagged)
	}
}

func TestLines_FlagOnlyDetectionIsIdempotent(t *testing.T) {
	transcript := strings.Join([]string{
		"=== Experiment 1 ===",
		"Alice: We should review the migration plan before launch.",
		"Bob: Review the migration plan, right, before launch.",
		"Gemini: That sounds like a good idea.",
		"Dana: I mean, basically, you know, I think we should go.",
	}, "\n")

	direct := checkerReport(t, transcript)

	lines := strings.Split(transcript, "\n")
	opts := defaultOpts()
	opts.FlagOnly = true
	flagged, _ := Lines(lines, opts)

	// Strip the inline flags back out and re-run the checker.
	stripped := make([]string, len(flagged))
	for i, line := range flagged {
		line = strings.TrimPrefix(line, "[ECHO] [HOLLOW] ")
		line = strings.TrimPrefix(line, "[HOLLOW] [ECHO] ")
		line = strings.TrimPrefix(line, "[ECHO] ")
		line = strings.TrimPrefix(line, "[HOLLOW] ")
		stripped[i] = line
	}
	rerun := checkerReport(t, strings.Join(stripped, "\n"))

	if rerun.TotalIssues != direct.TotalIssues {
		t.Errorf("total issues after flag round-trip = %d, want %d", rerun.TotalIssues, direct.TotalIssues)
	}
	if len(rerun.Echoes) != len(direct.Echoes) {
		t.Errorf("echoes = %d, want %d", len(rerun.Echoes), len(direct.Echoes))
	}
	if len(rerun.Hollows) != len(direct.Hollows) {
		t.Errorf("hollows = %d, want %d", len(rerun.Hollows), len(direct.Hollows))
	}
}

func checkerReport(t *testing.T, transcript string) *report.Report {
	t.Helper()
	tr, err := dialogue.Parse(strings.NewReader(transcript))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return report.Build("test.txt", tr, "Gemini")
}
