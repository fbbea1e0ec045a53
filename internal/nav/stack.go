package nav

import "github.com/sablewing/gridspeak/internal/logging/events"

// LevelKind names a navigation level (main menu, submenu, detail list).
type LevelKind string

// Level is one member of a handler's navigation stack. Its navigator
// owns the level's index and search buffer; a parent's state survives
// untouched while children are pushed above it.
type Level struct {
	Kind LevelKind
	Nav  *Navigator
}

const emptyAnnouncement = "empty"

// Stack is the explicit state machine of nested navigation levels.
// Depth is always at least 1.
type Stack struct {
	levels []*Level
}

// NewStack builds a stack with its root level.
func NewStack(kind LevelKind, items []Item) *Stack {
	return &Stack{levels: []*Level{{Kind: kind, Nav: NewNavigator(items)}}}
}

// Depth returns the number of levels.
func (s *Stack) Depth() int {
	return len(s.levels)
}

// Current returns the top level.
func (s *Stack) Current() *Level {
	return s.levels[len(s.levels)-1]
}

// Enter pushes a child level with fresh index and search state and
// returns the announcement for its first item, or the empty-state
// message.
func (s *Stack) Enter(kind LevelKind, items []Item) string {
	s.levels = append(s.levels, &Level{Kind: kind, Nav: NewNavigator(items)})
	events.Nav.MenuEnter(string(kind), 0)
	if item, ok := s.Current().Nav.Current(); ok {
		return item.Label
	}
	return emptyAnnouncement
}

// Exit pops one level and returns the announcement for the parent's
// restored selection. At the root it declines (ok=false) so the
// enclosing screen can close.
func (s *Stack) Exit() (string, bool) {
	if len(s.levels) <= 1 {
		return "", false
	}
	s.levels = s.levels[:len(s.levels)-1]
	parent := s.Current()
	events.Nav.MenuExit(string(parent.Kind), parent.Nav.Index())
	if item, ok := parent.Nav.Current(); ok {
		return item.Label, true
	}
	return emptyAnnouncement, true
}
