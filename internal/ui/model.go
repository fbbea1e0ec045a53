// Package ui implements the Bubble Tea shell around a simulated world:
// it translates terminal keys into abstract key events, feeds them to
// the session router and renders the map and the spoken transcript.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sablewing/gridspeak/internal/input"
	"github.com/sablewing/gridspeak/internal/nav"
	"github.com/sablewing/gridspeak/internal/session"
	"github.com/sablewing/gridspeak/internal/sim"
	"github.com/sablewing/gridspeak/internal/speech"
	"github.com/sablewing/gridspeak/internal/theme"
)

var styles = theme.Default()

const historyHeight = 6

// Model is the Bubble Tea model for the simulator shell.
type Model struct {
	world      *sim.World
	sess       *session.Context
	transcript *speech.Transcript

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	verbose     bool

	jumpActive bool
	jumpInput  textinput.Model
	history    viewport.Model
}

// NewModel initialises the UI state over a world and its session.
func NewModel(world *sim.World, sess *session.Context, transcript *speech.Transcript, width, height int, verbose bool) *Model {
	ti := textinput.New()
	ti.Placeholder = "jump to item"
	ti.CharLimit = 64
	m := &Model{
		world:      world,
		sess:       sess,
		transcript: transcript,
		verbose:    verbose,
		jumpInput:  ti,
		history:    viewport.New(0, historyHeight),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		m.history.Width = m.width
		m.syncHistory()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.sess.Teardown()
		return m, tea.Quit
	case "ctrl+f":
		if m.world.MenuOpen() && !m.jumpActive {
			m.jumpActive = true
			m.jumpInput.Reset()
			m.jumpInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}
	if m.jumpActive {
		return m.handleJumpKey(msg)
	}
	ev, ok := translateKey(msg)
	if !ok {
		return m, nil
	}
	if m.sess.Dispatch(ev) {
		m.syncHistory()
		return m, nil
	}
	return m.handleHostKey(ev)
}

// handleHostKey consumes keys the navigation layer declined. This is
// the stand-in for the game's native input handling.
func (m *Model) handleHostKey(ev input.Event) (tea.Model, tea.Cmd) {
	switch {
	case ev.Key == input.KeyEscape:
		if m.world.MenuOpen() {
			m.world.MenuScreen().Close()
			m.sess.Menu().Reset()
			m.transcript.Say("menu closed")
		}
	case ev.Key == input.KeyRune && ev.Rune == 'm':
		if !m.world.MenuOpen() {
			m.world.OpenMenu()
			m.transcript.Say("menu")
		}
	case ev.Key == input.KeyRune && ev.Rune == 'q':
		m.sess.Teardown()
		return m, tea.Quit
	}
	m.syncHistory()
	return m, nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeJump()
		return m, nil
	case tea.KeyEnter:
		query := m.jumpInput.Value()
		m.closeJump()
		m.executeJump(query)
		m.syncHistory()
		return m, nil
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *Model) closeJump() {
	m.jumpActive = false
	m.jumpInput.Blur()
}

// executeJump runs a fuzzy lookup over the current menu level, falling
// back to a closest-label hint when nothing matches.
func (m *Model) executeJump(query string) {
	stack := m.sess.Menu().Stack()
	if stack == nil {
		return
	}
	level := stack.Current().Nav
	if item, ok := level.FuzzyJump(query); ok {
		m.transcript.Say(item.Label)
		return
	}
	if hint, ok := nav.Suggest(level.Items(), query); ok {
		m.transcript.Say(fmt.Sprintf("no match, did you mean %s", hint))
		return
	}
	m.transcript.Say(fmt.Sprintf("no match for %s", query))
}

func (m *Model) syncHistory() {
	lines := m.transcript.History()
	content := ""
	for i, l := range lines {
		if i > 0 {
			content += "\n"
		}
		content += l
	}
	m.history.SetContent(content)
	m.history.GotoBottom()
}
