package nav

import (
	"fmt"

	"github.com/sablewing/gridspeak/internal/input"
	"github.com/sablewing/gridspeak/internal/logging/events"
	"github.com/sablewing/gridspeak/internal/speech"
)

// Screen is the host surface a menu handler is layered over. Open is a
// fresh query against the live host; the screen may close externally at
// any moment.
type Screen interface {
	Open() bool
	Close()
}

// Handler owns menu navigation keys while its screen is open.
type Handler struct {
	screen   Screen
	out      speech.Output
	suppress input.Suppressor
	rootKind LevelKind
	rootLoad Loader
	stack    *Stack
	gate     Gate
}

// NewHandler wires a menu handler over a host screen. rootLoad builds
// the root level's items each time the screen is (re)opened.
func NewHandler(screen Screen, rootKind LevelKind, rootLoad Loader, out speech.Output, suppress input.Suppressor) *Handler {
	return &Handler{
		screen:   screen,
		out:      out,
		suppress: suppress,
		rootKind: rootKind,
		rootLoad: rootLoad,
	}
}

// Active reports whether the menu's screen currently owns input. Fresh
// host query, no side effects.
func (h *Handler) Active() bool {
	return h.screen.Open()
}

// Stack exposes the live navigation stack, mainly for tests and the
// session teardown path. Nil while the menu has no built state.
func (h *Handler) Stack() *Stack {
	return h.stack
}

// Confirm arms the modal confirmation gate and announces the prompt.
// Item activations use this before destructive host actions.
func (h *Handler) Confirm(prompt string, accept func() string) error {
	if err := h.gate.Arm(prompt, accept); err != nil {
		return err
	}
	h.out.Say(prompt)
	return nil
}

// CloseScreen closes the handler's own screen as a side effect of a key
// and suppresses the host's processing of that same key.
func (h *Handler) CloseScreen() {
	h.screen.Close()
	if h.suppress != nil {
		h.suppress.SuppressHostKey()
	}
	h.Reset()
}

// Reset silently drops all navigation state. Idempotent.
func (h *Handler) Reset() {
	h.stack = nil
	h.gate.Disarm()
}

// ProcessKey handles one key for the menu. The screen may have closed
// externally since the last key; in that case the handler tears down its
// own state and declines rather than acting on stale data.
func (h *Handler) ProcessKey(ev input.Event) bool {
	if !h.screen.Open() {
		h.Reset()
		return false
	}
	h.ensureStack()
	if h.gate.Armed() {
		h.announce(h.gate.HandleKey(ev))
		return true
	}
	lvl := h.stack.Current()
	switch ev.Key {
	case input.KeyUp:
		h.announceMove(lvl.Nav.Move(-1))
	case input.KeyDown:
		h.announceMove(lvl.Nav.Move(1))
	case input.KeyHome:
		h.announceMove(lvl.Nav.Home())
	case input.KeyEnd:
		h.announceMove(lvl.Nav.End())
	case input.KeyEnter:
		h.activate(lvl)
	case input.KeyEscape, input.KeyLeft:
		text, ok := h.stack.Exit()
		if !ok {
			// Root-level cancellation belongs to the enclosing screen.
			return false
		}
		h.announce(text)
	case input.KeyRight:
		item, ok := lvl.Nav.Current()
		if ok && item.Loader != nil {
			h.enterChild(item)
		} else {
			h.reannounce(lvl)
		}
	case input.KeyBackspace:
		h.announceSearch(lvl.Nav.Backspace())
	case input.KeyRune:
		h.announceSearch(lvl.Nav.TypeAhead(ev.Rune))
	default:
		return false
	}
	return true
}

func (h *Handler) ensureStack() {
	if h.stack != nil {
		return
	}
	items := h.loadRoot()
	h.stack = NewStack(h.rootKind, items)
	events.Nav.MenuEnter(string(h.rootKind), 0)
}

func (h *Handler) loadRoot() []Item {
	if h.rootLoad == nil {
		return nil
	}
	items, err := h.rootLoad()
	if err != nil {
		// Absent data: fall back to an empty level.
		events.Nav.ActionError(err)
		return nil
	}
	return items
}

func (h *Handler) announce(text string) {
	if text == "" {
		return
	}
	h.out.Say(text)
}

func (h *Handler) announceMove(item Item, ok bool) {
	if !ok {
		h.announce(emptyAnnouncement)
		return
	}
	events.Nav.Cursor(string(h.stack.Current().Kind), h.stack.Current().Nav.Index())
	h.announce(item.Label)
}

func (h *Handler) announceSearch(res SearchResult) {
	lvl := h.stack.Current()
	events.Nav.Search(string(lvl.Kind), res.Buffer, res.Matched)
	switch {
	case res.Cleared:
		h.announce("search cleared")
	case res.Matched:
		h.announce(res.Item.Label)
	default:
		h.announce(fmt.Sprintf("no match for %s", res.Buffer))
	}
}

func (h *Handler) reannounce(lvl *Level) {
	if item, ok := lvl.Nav.Current(); ok {
		h.announce(item.Label)
	} else {
		h.announce(emptyAnnouncement)
	}
}

func (h *Handler) activate(lvl *Level) {
	item, ok := lvl.Nav.Current()
	if !ok {
		h.announce(emptyAnnouncement)
		return
	}
	switch {
	case item.Loader != nil:
		h.enterChild(item)
	case item.Activate != nil:
		text, err := item.Activate()
		if err != nil {
			// Host rejected the side effect: speak the reason.
			events.Nav.ActionError(err)
			h.announce(err.Error())
			h.out.Play(speech.CueFailure)
			return
		}
		h.announce(text)
	default:
		// Read-only item: activation merely re-announces it.
		h.reannounce(lvl)
	}
}

func (h *Handler) enterChild(item Item) {
	items, err := item.Loader()
	if err != nil {
		// Absent data never propagates as a fault.
		events.Nav.ActionError(err)
		return
	}
	h.announce(h.stack.Enter(LevelKind(item.ID), items))
}
