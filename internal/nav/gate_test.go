package nav

import (
	"testing"

	"github.com/sablewing/gridspeak/internal/input"
)

func TestGateArmAndAccept(t *testing.T) {
	var g Gate
	invoked := false
	if err := g.Arm("demolish sawmill?", func() string {
		invoked = true
		return "sawmill demolished"
	}); err != nil {
		t.Fatalf("arm failed: %v", err)
	}
	if !g.Armed() {
		t.Fatalf("expected gate armed")
	}
	got := g.HandleKey(input.KeyEvent(input.KeyEnter))
	if got != "sawmill demolished" {
		t.Fatalf("expected acceptance announcement, got %q", got)
	}
	if !invoked {
		t.Fatalf("accept callback not invoked")
	}
	if g.Armed() {
		t.Fatalf("expected gate disarmed after acceptance")
	}
}

func TestGateEscapeCancels(t *testing.T) {
	var g Gate
	g.Arm("demolish sawmill?", func() string {
		t.Fatalf("callback must not run on cancel")
		return ""
	})
	if got := g.HandleKey(input.KeyEvent(input.KeyEscape)); got != "cancelled" {
		t.Fatalf("expected cancellation announcement, got %q", got)
	}
	if g.Armed() {
		t.Fatalf("expected gate disarmed after cancel")
	}
}

func TestGateOtherKeysReannouncePrompt(t *testing.T) {
	var g Gate
	g.Arm("demolish sawmill?", func() string { return "" })
	for _, ev := range []input.Event{
		input.KeyEvent(input.KeyUp),
		input.RuneEvent('x'),
		input.KeyEvent(input.KeySpace),
	} {
		if got := g.HandleKey(ev); got != "demolish sawmill?" {
			t.Fatalf("%s: expected prompt re-announced, got %q", ev, got)
		}
		if !g.Armed() {
			t.Fatalf("%s: gate must stay armed", ev)
		}
	}
}

func TestGateRejectsDoubleArm(t *testing.T) {
	var g Gate
	g.Arm("first?", func() string { return "" })
	if err := g.Arm("second?", func() string { return "" }); err != ErrAlreadyArmed {
		t.Fatalf("expected ErrAlreadyArmed, got %v", err)
	}
	// The pending confirmation is untouched.
	if got := g.HandleKey(input.RuneEvent('?')); got != "first?" {
		t.Fatalf("expected original prompt preserved, got %q", got)
	}
}

func TestGateDisarmSkipsCallback(t *testing.T) {
	var g Gate
	g.Arm("sure?", func() string {
		t.Fatalf("callback must not run after disarm")
		return ""
	})
	g.Disarm()
	if g.Armed() {
		t.Fatalf("expected disarmed")
	}
}
