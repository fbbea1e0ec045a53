// Package input defines the abstract key model and the arbitration
// router that decides which handler owns a keystroke.
package input

import "fmt"

// Key is an abstract key code, independent of any terminal or engine
// key representation.
type Key int

const (
	KeyNone Key = iota
	// KeyRune carries a printable character in Event.Rune.
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeySpace:     "space",
}

// String returns the key's trace-log name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Modifiers is the modifier set delivered with a key press.
type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
}

// Event is one physical key press. There is no repeat suppression at
// this layer.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifiers
}

// String renders the event for trace logging, e.g. "ctrl+up" or "'a'".
func (e Event) String() string {
	prefix := ""
	if e.Mod.Ctrl {
		prefix += "ctrl+"
	}
	if e.Mod.Alt {
		prefix += "alt+"
	}
	if e.Mod.Shift {
		prefix += "shift+"
	}
	if e.Key == KeyRune {
		return fmt.Sprintf("%s'%c'", prefix, e.Rune)
	}
	return prefix + e.Key.String()
}

// Rune builds a printable-character event.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent builds a plain event for a named key.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}
