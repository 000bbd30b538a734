package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	Calendar CalendarTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Placeholder  lipgloss.Style
}

// CalendarTheme styles the calendar grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Day      lipgloss.Style
	Outside  lipgloss.Style
	HasItems lipgloss.Style
	Today    lipgloss.Style
	Time     lipgloss.Style
	Text     lipgloss.Style
	Empty    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			FocusedFrame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(1, 2),
			Title:       lipgloss.NewStyle().Bold(true),
			Body:        lipgloss.NewStyle(),
			Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Outside:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			HasItems: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Text:     lipgloss.NewStyle(),
			Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
		},
	}
}
