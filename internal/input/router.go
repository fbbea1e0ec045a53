package input

import "github.com/sablewing/gridspeak/internal/logging/events"

// Handler competes for exclusive ownership of a key event.
//
// Active must be side-effect-free; it may query live host state but must
// not mutate anything. ProcessKey returns true when the key was consumed
// and false to decline it. A declined key falls through to the host's
// native input; it is not re-offered to lower-priority handlers.
type Handler interface {
	Active() bool
	ProcessKey(ev Event) bool
}

// Suppressor lets a handler flag that the host must skip its own
// processing of the current key, typically because the handler already
// closed its screen as a side effect and the host would otherwise treat
// the same key as a cancellation.
type Suppressor interface {
	SuppressHostKey()
}

// Router dispatches each key event to the first active handler in a
// fixed priority list.
type Router struct {
	handlers []Handler
	names    []string
	suppress bool
}

// NewRouter builds an empty router; register handlers in priority order.
func NewRouter() *Router {
	return &Router{}
}

// Register appends a handler at the lowest priority so far. The name is
// used only for trace logging.
func (r *Router) Register(name string, h Handler) {
	r.handlers = append(r.handlers, h)
	r.names = append(r.names, name)
}

// SuppressHostKey arms the one-shot suppression flag for the key
// currently being dispatched.
func (r *Router) SuppressHostKey() {
	r.suppress = true
}

// Dispatch offers the event to the first handler reporting active and
// returns whether the host should consider the key consumed. When no
// handler is active, or the owning handler declines without arming
// suppression, the key falls through to the host.
func (r *Router) Dispatch(ev Event) bool {
	r.suppress = false
	for i, h := range r.handlers {
		if !h.Active() {
			continue
		}
		consumed := h.ProcessKey(ev)
		if r.suppress {
			r.suppress = false
			consumed = true
		}
		events.Router.Dispatch(r.names[i], ev.String(), consumed)
		return consumed
	}
	events.Router.Unhandled(ev.String())
	return false
}
