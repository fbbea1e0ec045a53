// Package events exposes typed trace emitters for the navigation core.
package events

import "github.com/sablewing/gridspeak/internal/logging"

type AppTracer struct{}

type RouterTracer struct{}

type NavTracer struct{}

type GridTracer struct{}

type SpeechTracer struct{}

var (
	App    = AppTracer{}
	Router = RouterTracer{}
	Nav    = NavTracer{}
	Grid   = GridTracer{}
	Speech = SpeechTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) SessionOpen(id string) {
	logging.Trace("app.session-open", map[string]interface{}{"session": id})
}

func (AppTracer) SessionTeardown(id string) {
	logging.Trace("app.session-teardown", map[string]interface{}{"session": id})
}

func (RouterTracer) Dispatch(handler, key string, consumed bool) {
	logging.Trace("router.dispatch", map[string]interface{}{
		"handler":  handler,
		"key":      key,
		"consumed": consumed,
	})
}

func (RouterTracer) Unhandled(key string) {
	logging.Trace("router.unhandled", map[string]interface{}{"key": key})
}

func (NavTracer) MenuEnter(kind string, index int) {
	logging.Trace("nav.menu-enter", map[string]interface{}{"level": kind, "index": index})
}

func (NavTracer) MenuExit(kind string, index int) {
	logging.Trace("nav.menu-exit", map[string]interface{}{"level": kind, "index": index})
}

func (NavTracer) Cursor(kind string, index int) {
	logging.Trace("nav.cursor", map[string]interface{}{"level": kind, "index": index})
}

func (NavTracer) Search(kind, buffer string, matched bool) {
	logging.Trace("nav.search", map[string]interface{}{
		"level":   kind,
		"buffer":  buffer,
		"matched": matched,
	})
}

func (NavTracer) ConfirmArmed(prompt string) {
	logging.Trace("nav.confirm-armed", map[string]interface{}{"prompt": prompt})
}

func (NavTracer) ConfirmResolved(accepted bool) {
	logging.Trace("nav.confirm-resolved", map[string]interface{}{"accepted": accepted})
}

func (NavTracer) ActionError(err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.action-error", map[string]interface{}{"error": err.Error()})
}

func (GridTracer) CursorMove(x, y int) {
	logging.Trace("grid.cursor-move", map[string]interface{}{"x": x, "y": y})
}

func (GridTracer) Boundary(x, y, dx, dy int) {
	logging.Trace("grid.boundary", map[string]interface{}{"x": x, "y": y, "dx": dx, "dy": dy})
}

func (GridTracer) Skip(dx, dy, steps int) {
	logging.Trace("grid.skip", map[string]interface{}{"dx": dx, "dy": dy, "steps": steps})
}

func (GridTracer) Reset() {
	logging.Trace("grid.reset", nil)
}

func (SpeechTracer) Say(text string) {
	logging.Trace("speech.say", map[string]interface{}{"text": text})
}

func (SpeechTracer) Cue(id string) {
	logging.Trace("speech.cue", map[string]interface{}{"cue": id})
}
