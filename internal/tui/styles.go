package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
)

type palette struct {
	Fg       string
	Dim      string
	Accent   string
	Selected string
	Success  string
	Danger   string
	StatusBg string
}

var (
	darkPalette = palette{
		Fg:       "252",
		Dim:      "243",
		Accent:   "75",
		Selected: "237",
		Success:  "78",
		Danger:   "203",
		StatusBg: "235",
	}
	lightPalette = palette{
		Fg:       "235",
		Dim:      "245",
		Accent:   "25",
		Selected: "254",
		Success:  "28",
		Danger:   "160",
		StatusBg: "253",
	}
)

type styles struct {
	title    lipgloss.Style
	dim      lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	unread   lipgloss.Style
	label    lipgloss.Style
	status   map[notify.Level]lipgloss.Style
	prompt   lipgloss.Style
	bar      lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	base := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg))
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),
		row:      base,
		selected: base.Background(lipgloss.Color(p.Selected)),
		unread:   base.Bold(true),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)).Width(9),
		status: map[notify.Level]lipgloss.Style{
			notify.Primary: base,
			notify.Success: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)),
			notify.Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Danger)).Bold(true),
		},
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Danger)).Bold(true),
		bar: lipgloss.NewStyle().
			Background(lipgloss.Color(p.StatusBg)).
			Foreground(lipgloss.Color(p.Fg)).
			Padding(0, 1),
	}
}

func newHelpModel(dark bool) help.Model {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	m := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim))
	m.Styles.ShortKey = keyStyle
	m.Styles.ShortDesc = descStyle
	m.Styles.ShortSeparator = descStyle
	m.Styles.Ellipsis = descStyle
	m.ShortSeparator = " • "
	return m
}
