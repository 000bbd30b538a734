// Package panel defines the reusable framed panel the dashboard is built
// from.
package panel

import (
	"strings"

	"tableflip.dev/moments/pkg/tui/theme"
)

// Model renders a titled panel with body lines.
type Model struct {
	title   string
	lines   []string
	focused bool
	width   int
	height  int
	theme   theme.PanelTheme
}

// New returns a panel model with the given theme.
func New(th theme.PanelTheme) Model {
	return Model{theme: th}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetFocus toggles the focused frame.
func (m *Model) SetFocus(focused bool) {
	m.focused = focused
}

// SetSize fixes the outer panel dimensions. Zero means natural size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View returns the rendered panel.
func (m Model) View() string {
	var content []string
	if m.title != "" {
		content = append(content, m.theme.Title.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.theme.Body.Render(line))
	}

	frame := m.theme.Frame
	if m.focused {
		frame = m.theme.FocusedFrame
	}
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalFrameSize())
	}
	if m.height > 0 {
		frame = frame.Height(m.height - frame.GetVerticalFrameSize())
	}
	return frame.Render(strings.Join(content, "\n"))
}
