package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AccentColor   string
	MutedColor    string
	DividerColor  string
	ActiveColor   string
	VisitedColor  string
	DisabledColor string
	ProgressColor string
	NotesColor    string
	// MarkdownStyle is the glamour standard style for slide bodies.
	MarkdownStyle string
}

func darkTheme() Theme {
	return Theme{
		AccentColor:   "39",
		MutedColor:    "245",
		DividerColor:  "240",
		ActiveColor:   "212",
		VisitedColor:  "109",
		DisabledColor: "238",
		ProgressColor: "#21808D",
		NotesColor:    "180",
		MarkdownStyle: "dark",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:   "25",
		MutedColor:    "243",
		DividerColor:  "250",
		ActiveColor:   "162",
		VisitedColor:  "30",
		DisabledColor: "252",
		ProgressColor: "#21808D",
		NotesColor:    "94",
		MarkdownStyle: "light",
	}
}

// GetTheme returns the named base theme; anything but "light" is dark.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

func (t Theme) fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func (t Theme) DividerText(s string) string { return t.fg(t.DividerColor).Render(s) }

func (t Theme) AccentText(s string) string { return t.fg(t.AccentColor).Bold(true).Render(s) }

func (t Theme) MutedText(s string) string { return t.fg(t.MutedColor).Render(s) }

func (t Theme) DisabledText(s string) string { return t.fg(t.DisabledColor).Render(s) }

func (t Theme) NotesText(s string) string { return t.fg(t.NotesColor).Italic(true).Render(s) }

// NavText styles a nav button by its slide's placement.
func (t Theme) NavText(s string, p Placement) string {
	switch p {
	case PlacementActive:
		return t.fg(t.ActiveColor).Bold(true).Underline(true).Render(s)
	case PlacementLeft:
		return t.fg(t.VisitedColor).Render(s)
	default:
		return t.fg(t.MutedColor).Render(s)
	}
}
