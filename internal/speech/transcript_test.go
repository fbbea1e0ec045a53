package speech

import "testing"

func TestTranscriptLatestWins(t *testing.T) {
	tr := NewTranscript(3)
	tr.Say("first")
	tr.Say("second")
	if tr.Current() != "second" {
		t.Fatalf("expected latest utterance to supersede, got %q", tr.Current())
	}
}

func TestTranscriptHistoryBounded(t *testing.T) {
	tr := NewTranscript(2)
	tr.Say("a")
	tr.Say("b")
	tr.Say("c")
	got := tr.History()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("unexpected history %v", got)
	}
}

func TestTranscriptIgnoresEmpty(t *testing.T) {
	tr := NewTranscript(2)
	tr.Say("a")
	tr.Say("")
	if tr.Current() != "a" {
		t.Fatalf("empty utterance must not supersede, got %q", tr.Current())
	}
}

func TestTranscriptCue(t *testing.T) {
	tr := NewTranscript(2)
	tr.Play(CueFailure)
	if tr.LastCue() != CueFailure {
		t.Fatalf("expected failure cue, got %q", tr.LastCue())
	}
}
