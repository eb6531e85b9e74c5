package detect

import (
	"testing"

	"github.com/johns/dialogue-lint/internal/dialogue"
)

func turn(line int, speaker, message string) dialogue.Turn {
	return dialogue.Turn{Line: line, Speaker: speaker, Message: message}
}

func TestFillers_Density(t *testing.T) {
	turns := []dialogue.Turn{
		turn(1, "Dana", "I mean, basically we should go, you know?"),
		turn(2, "Dana", "I guess that works."),
	}
	rep := Fillers(turns)

	if len(rep.Speakers) != 1 {
		t.Fatalf("expected 1 speaker, got %d", len(rep.Speakers))
	}
	s := rep.Speakers[0]
	if s.Fillers != 4 {
		t.Errorf("fillers = %d, want 4", s.Fillers)
	}
	if s.Messages != 2 {
		t.Errorf("messages = %d, want 2", s.Messages)
	}
	if s.Density != 2.0 {
		t.Errorf("density = %v, want 2.0", s.Density)
	}

	if len(rep.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(rep.Issues))
	}
	if rep.Issues[0].Speaker != "Dana" {
		t.Errorf("issue speaker = %q", rep.Issues[0].Speaker)
	}
}

func TestFillers_ZeroFillersZeroDensity(t *testing.T) {
	turns := []dialogue.Turn{
		turn(1, "Alice", "The parser handles sections now."),
		turn(2, "Alice", "Echo detection comes next."),
	}
	rep := Fillers(turns)

	if len(rep.Speakers) != 1 {
		t.Fatalf("expected 1 speaker in stats, got %d", len(rep.Speakers))
	}
	if rep.Speakers[0].Density != 0 {
		t.Errorf("density = %v, want 0", rep.Speakers[0].Density)
	}
	if len(rep.Issues) != 0 {
		t.Errorf("expected 0 issues, got %d", len(rep.Issues))
	}
}

func TestFillers_InfoTierIsNotAnIssue(t *testing.T) {
	// One filler in two messages: density 0.5 sits between the info tier
	// (0.3) and the warning threshold (1.0).
	turns := []dialogue.Turn{
		turn(1, "Bob", "Basically we ship on Friday."),
		turn(2, "Bob", "The tests pass."),
	}
	rep := Fillers(turns)

	if rep.Speakers[0].Density != 0.5 {
		t.Fatalf("density = %v, want 0.5", rep.Speakers[0].Density)
	}
	if len(rep.Issues) != 0 {
		t.Errorf("expected 0 issues at density 0.5, got %d", len(rep.Issues))
	}
}

func TestFillers_ExactlyOnePerMessageNotFlagged(t *testing.T) {
	turns := []dialogue.Turn{
		turn(1, "Bob", "Basically we ship on Friday."),
	}
	rep := Fillers(turns)
	// Density 1.0 equals the threshold; the issue requires exceeding it.
	if len(rep.Issues) != 0 {
		t.Errorf("expected 0 issues at density 1.0, got %d", len(rep.Issues))
	}
}

func TestFillers_Breakdown(t *testing.T) {
	turns := []dialogue.Turn{
		turn(1, "Dana", "You know, you know, I guess."),
	}
	rep := Fillers(turns)
	b := rep.Speakers[0].Breakdown
	if b["you know"] != 2 {
		t.Errorf(`breakdown["you know"] = %d, want 2`, b["you know"])
	}
	if b["I guess"] != 1 {
		t.Errorf(`breakdown["I guess"] = %d, want 1`, b["I guess"])
	}
}

func TestFillers_SortedByDensity(t *testing.T) {
	turns := []dialogue.Turn{
		turn(1, "Calm", "Nothing noteworthy here."),
		turn(2, "Wordy", "I mean, basically, you know."),
	}
	rep := Fillers(turns)
	if rep.Speakers[0].Speaker != "Wordy" {
		t.Errorf("first speaker = %q, want Wordy", rep.Speakers[0].Speaker)
	}
}

func TestCountFillers_WholeTokenOnly(t *testing.T) {
	// "drum" must not match "um", "unlikely" must not match the comma form
	// of "like", and "thinking" must not match "I think".
	if n := CountFillers("The drum is unlikely to fail."); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
	if n := CountFillers("Um, basically it works, you know."); n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestCountFillers_CaseInsensitive(t *testing.T) {
	if n := CountFillers("BASICALLY I MEAN yes."); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}
