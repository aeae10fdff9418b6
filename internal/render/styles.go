// internal/render/styles.go
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ---- COLOR MODES ----

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Profile picks the color profile for a color mode.
// Auto colors only a terminal, and honors NO_COLOR.
func Profile(mode string, isTTY bool) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	default:
		if !isTTY || termenv.EnvNoColor() {
			return termenv.Ascii
		}
		return termenv.ANSI256
	}
}

// ---- STYLES ----

type styles struct {
	header lipgloss.Style
	italic lipgloss.Style

	green   lipgloss.Style
	red     lipgloss.Style
	yellow  lipgloss.Style
	gray    lipgloss.Style
	white   lipgloss.Style
	blue    lipgloss.Style
	cyan    lipgloss.Style
	magenta lipgloss.Style
	orange  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return styles{
		header: r.NewStyle().Bold(true),
		italic: r.NewStyle().Italic(true),

		green:   fg("2"),
		red:     fg("1"),
		yellow:  fg("3"),
		gray:    fg("8"),
		white:   fg("7"),
		blue:    fg("4"),
		cyan:    fg("6"),
		magenta: fg("5"),
		orange:  fg("208"),
	}
}
