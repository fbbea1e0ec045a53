package nav

import (
	"errors"

	"github.com/sablewing/gridspeak/internal/input"
	"github.com/sablewing/gridspeak/internal/logging/events"
)

// ErrAlreadyArmed is returned when a confirmation is requested while one
// is still pending. The caller must guarantee only one confirmation is
// live at a time.
var ErrAlreadyArmed = errors.New("confirmation already armed")

const cancelledAnnouncement = "cancelled"

// Gate is the modal yes/no sub-protocol. While armed it owns every key
// exclusively until Enter resolves it or Escape cancels it.
type Gate struct {
	armed  bool
	prompt string
	accept func() string
}

// Armed reports whether a confirmation is pending.
func (g *Gate) Armed() bool {
	return g.armed
}

// Arm latches the gate with a prompt and the callback to invoke on
// acceptance. Returns the prompt announcement, or ErrAlreadyArmed.
func (g *Gate) Arm(prompt string, accept func() string) error {
	if g.armed {
		return ErrAlreadyArmed
	}
	g.armed = true
	g.prompt = prompt
	g.accept = accept
	events.Nav.ConfirmArmed(prompt)
	return nil
}

// Disarm clears the latch without invoking the callback.
func (g *Gate) Disarm() {
	g.armed = false
	g.prompt = ""
	g.accept = nil
}

// HandleKey resolves a key while armed: Enter invokes the callback and
// clears the latch, Escape cancels, anything else re-announces the
// prompt. The returned text is the announcement; every key is consumed.
func (g *Gate) HandleKey(ev input.Event) string {
	switch ev.Key {
	case input.KeyEnter:
		accept := g.accept
		g.Disarm()
		events.Nav.ConfirmResolved(true)
		if accept == nil {
			return ""
		}
		return accept()
	case input.KeyEscape:
		g.Disarm()
		events.Nav.ConfirmResolved(false)
		return cancelledAnnouncement
	default:
		return g.prompt
	}
}
