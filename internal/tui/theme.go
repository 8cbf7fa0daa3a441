package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Error       lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor

	Title    lipgloss.Style
	Badge    lipgloss.Style
	Pane     lipgloss.Style
	InputBox lipgloss.Style
	Footer   lipgloss.Style
	Result   lipgloss.Style
	ErrLine  lipgloss.Style
}

func NewTheme() Theme {
	if os.Getenv("GLIMPSE_NO_COLOR") == "1" {
		return newTheme(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
			lipgloss.AdaptiveColor{Light: "#555555", Dark: "#bbbbbb"},
			lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
			lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
			lipgloss.AdaptiveColor{Light: "#555555", Dark: "#777777"},
		)
	}
	return newTheme(
		lipgloss.AdaptiveColor{Light: "#1d2433", Dark: "#f2f2f2"},
		lipgloss.AdaptiveColor{Light: "#4a5568", Dark: "#9aa0a6"},
		lipgloss.AdaptiveColor{Light: "#2b6cb0", Dark: "#63b3ed"},
		lipgloss.AdaptiveColor{Light: "#c53030", Dark: "#fc8181"},
		lipgloss.AdaptiveColor{Light: "#718096", Dark: "#4a5568"},
	)
}

func newTheme(primary, muted, accent, errc, border lipgloss.AdaptiveColor) Theme {
	t := Theme{
		TextPrimary: primary,
		TextMuted:   muted,
		Accent:      accent,
		Error:       errc,
		Border:      border,
	}
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.Badge = lipgloss.NewStyle().Bold(true).Foreground(accent)
	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border).Padding(0, 1)
	t.InputBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accent).Padding(0, 1)
	t.Footer = lipgloss.NewStyle().Foreground(muted)
	t.Result = lipgloss.NewStyle().Foreground(primary)
	t.ErrLine = lipgloss.NewStyle().Foreground(errc)
	return t
}
