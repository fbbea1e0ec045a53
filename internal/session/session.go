// Package session owns the per-game-session wiring: the input router,
// the menu and map handlers layered over a shared world, and the
// teardown latch that fires when the host session ends.
package session

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sablewing/gridspeak/internal/grid"
	"github.com/sablewing/gridspeak/internal/input"
	"github.com/sablewing/gridspeak/internal/logging/events"
	"github.com/sablewing/gridspeak/internal/nav"
	"github.com/sablewing/gridspeak/internal/speech"
)

// World is everything a session needs from the host: the map source for
// the grid handler plus the menu screen and its root item loader.
type World interface {
	grid.WorldSource
	MenuScreen() nav.Screen
	MenuRoot() nav.Loader
}

// Context binds the handlers for one session. Handlers register in
// priority order; the menu outranks the map so an open menu owns every
// key first.
type Context struct {
	ID     string
	router *input.Router
	menu   *nav.Handler
	grid   *grid.Handler
	tracer trace.Tracer
	closed bool
}

// New opens a session over a world. The tracer may be a noop tracer
// when telemetry is disabled.
func New(world World, out speech.Output, tracer trace.Tracer) *Context {
	c := &Context{
		ID:     uuid.NewString(),
		router: input.NewRouter(),
		tracer: tracer,
	}
	c.menu = nav.NewHandler(world.MenuScreen(), "main", world.MenuRoot(), out, c.router)
	c.grid = grid.NewHandler(world, grid.NewCursor(world), out)
	c.router.Register("menu", c.menu)
	c.router.Register("grid", c.grid)
	events.App.SessionOpen(c.ID)
	return c
}

// Menu exposes the session's menu handler.
func (c *Context) Menu() *nav.Handler {
	return c.menu
}

// Grid exposes the session's map handler.
func (c *Context) Grid() *grid.Handler {
	return c.grid
}

// Dispatch routes one key event and reports whether the host should
// treat it as consumed. A torn-down session declines everything.
func (c *Context) Dispatch(ev input.Event) bool {
	if c.closed {
		return false
	}
	_, span := c.tracer.Start(context.Background(), "session.dispatch",
		trace.WithAttributes(attribute.String("key", ev.String())))
	consumed := c.router.Dispatch(ev)
	span.SetAttributes(attribute.Bool("consumed", consumed))
	span.End()
	return consumed
}

// Teardown drops all navigation state when the host session ends. The
// latch is one-way and idempotent; a closed session never dispatches
// again.
func (c *Context) Teardown() {
	if c.closed {
		return
	}
	c.closed = true
	c.menu.Reset()
	c.grid.Cursor().Reset()
	events.App.SessionTeardown(c.ID)
}

// Closed reports whether the session has been torn down.
func (c *Context) Closed() bool {
	return c.closed
}
