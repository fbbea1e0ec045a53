package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sablewing/gridspeak/internal/input"
)

// translateKey maps a terminal key message onto the abstract key model.
// Keys without a mapping are dropped before they reach the router.
func translateKey(msg tea.KeyMsg) (input.Event, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return input.KeyEvent(input.KeyUp), true
	case tea.KeyDown:
		return input.KeyEvent(input.KeyDown), true
	case tea.KeyLeft:
		return input.KeyEvent(input.KeyLeft), true
	case tea.KeyRight:
		return input.KeyEvent(input.KeyRight), true
	case tea.KeyShiftUp:
		return shifted(input.KeyUp), true
	case tea.KeyShiftDown:
		return shifted(input.KeyDown), true
	case tea.KeyShiftLeft:
		return shifted(input.KeyLeft), true
	case tea.KeyShiftRight:
		return shifted(input.KeyRight), true
	case tea.KeyHome:
		return input.KeyEvent(input.KeyHome), true
	case tea.KeyEnd:
		return input.KeyEvent(input.KeyEnd), true
	case tea.KeyPgUp:
		return input.KeyEvent(input.KeyPageUp), true
	case tea.KeyPgDown:
		return input.KeyEvent(input.KeyPageDown), true
	case tea.KeyEnter:
		return input.KeyEvent(input.KeyEnter), true
	case tea.KeyEsc:
		return input.KeyEvent(input.KeyEscape), true
	case tea.KeyBackspace:
		return input.KeyEvent(input.KeyBackspace), true
	case tea.KeyTab:
		return input.KeyEvent(input.KeyTab), true
	case tea.KeySpace:
		return input.KeyEvent(input.KeySpace), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return input.Event{}, false
		}
		return input.RuneEvent(msg.Runes[0]), true
	}
	return input.Event{}, false
}

func shifted(k input.Key) input.Event {
	return input.Event{Key: k, Mod: input.Modifiers{Shift: true}}
}
