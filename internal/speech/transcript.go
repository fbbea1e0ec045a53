package speech

import "github.com/sablewing/gridspeak/internal/logging/events"

// Transcript is a bounded history of spoken output for display. The
// current utterance models the latest-wins policy: it is replaced, never
// queued.
type Transcript struct {
	limit   int
	current string
	lastCue Cue
	history []string
}

// NewTranscript builds a transcript retaining at most limit lines.
func NewTranscript(limit int) *Transcript {
	if limit <= 0 {
		limit = 100
	}
	return &Transcript{limit: limit}
}

func (t *Transcript) Say(text string) {
	if text == "" {
		return
	}
	t.current = text
	t.history = append(t.history, text)
	if len(t.history) > t.limit {
		t.history = t.history[len(t.history)-t.limit:]
	}
	events.Speech.Say(text)
}

func (t *Transcript) Play(cue Cue) {
	t.lastCue = cue
	events.Speech.Cue(string(cue))
}

// Current returns the utterance that supersedes all earlier ones.
func (t *Transcript) Current() string {
	return t.current
}

// LastCue returns the most recently triggered sound cue.
func (t *Transcript) LastCue() Cue {
	return t.lastCue
}

// History returns the retained spoken lines, oldest first.
func (t *Transcript) History() []string {
	out := make([]string, len(t.history))
	copy(out, t.history)
	return out
}
