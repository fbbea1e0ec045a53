// Package speech defines the output sinks the navigation core speaks
// through. Delivery is latest-wins: a new utterance supersedes any
// unfinished prior one, nothing is queued.
package speech

// Cue identifies a sound effect. Playback is fire-and-forget with no
// ordering guarantee relative to speech.
type Cue string

const (
	CueFailure  Cue = "failure"
	CueConfirm  Cue = "confirm"
	CueBoundary Cue = "boundary"
)

// Output is the speech and sound sink contract.
type Output interface {
	// Say speaks text, superseding any unfinished prior utterance.
	Say(text string)
	// Play triggers a sound cue.
	Play(cue Cue)
}

// Null discards all output.
type Null struct{}

func (Null) Say(string) {}

func (Null) Play(Cue) {}

// Recorder captures output for tests.
type Recorder struct {
	Utterances []string
	Cues       []Cue
}

func (r *Recorder) Say(text string) {
	r.Utterances = append(r.Utterances, text)
}

func (r *Recorder) Play(cue Cue) {
	r.Cues = append(r.Cues, cue)
}

// Last returns the most recent utterance, or "" when nothing was spoken.
func (r *Recorder) Last() string {
	if len(r.Utterances) == 0 {
		return ""
	}
	return r.Utterances[len(r.Utterances)-1]
}

// Reset clears recorded output.
func (r *Recorder) Reset() {
	r.Utterances = nil
	r.Cues = nil
}
