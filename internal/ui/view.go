package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/sablewing/gridspeak/internal/grid"
	"github.com/sablewing/gridspeak/internal/spatial"
)

func (m *Model) View() string {
	parts := []string{
		styles.Header.Render(fmt.Sprintf("gridspeak: %s", m.world.Name())),
		m.renderMap(),
		m.renderStatus(),
		styles.Utterance.Render(m.history.View()),
	}
	if m.jumpActive {
		parts = append(parts, m.jumpInput.View())
	}
	parts = append(parts, styles.Footer.Render(m.footerHint()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderMap() string {
	w, h, ok := m.world.Bounds()
	if !ok {
		return styles.Error.Render("map unavailable")
	}
	cursorPos, hasCursor := m.sess.Grid().Cursor().Position()
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			p := spatial.Point{X: x, Y: y}
			cell := m.renderCell(p, hasCursor && p == cursorPos)
			b.WriteString(cell)
		}
	}
	return b.String()
}

func (m *Model) renderCell(p spatial.Point, underCursor bool) string {
	glyph, style := m.cellGlyph(p)
	if underCursor {
		style = styles.CursorTile
	}
	return style.Render(string(glyph))
}

func (m *Model) cellGlyph(p spatial.Point) (rune, *lipgloss.Style) {
	if m.world.Visibility(p) == grid.VisibilityHidden {
		return '?', styles.Impassable
	}
	tile, ok := m.world.TileAt(p)
	if !ok {
		return ' ', styles.Terrain
	}
	switch {
	case tile.Object != nil:
		name := []rune(tile.Object.Name)
		if len(name) == 0 {
			return '#', styles.Structure
		}
		return unicode.ToUpper(name[0]), styles.Structure
	case len(tile.Occupants) > 0:
		return '@', styles.Structure
	case !tile.Passable:
		return '#', styles.Impassable
	}
	return '.', styles.Terrain
}

func (m *Model) renderStatus() string {
	current := m.transcript.Current()
	if current == "" {
		current = "ready"
	}
	line := styles.Info.Render(current)
	if cue := m.transcript.LastCue(); cue != "" && m.verbose {
		line += " " + styles.Cue.Render(fmt.Sprintf("[%s]", cue))
	}
	return line
}

func (m *Model) footerHint() string {
	if m.jumpActive {
		return "enter jump · esc cancel"
	}
	if m.world.MenuOpen() {
		return "type to search · ctrl+f jump · esc back · q quit"
	}
	return "arrows move · shift+arrows skip · i info · m menu · q quit"
}
