package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
)

// Palette decorates report lines. A disabled palette returns text unchanged,
// keeping piped output and tests free of escape sequences.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that styles text only when enabled.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// PaletteFor returns a palette enabled for ModeInteractive.
func PaletteFor(mode Mode) Palette {
	return NewPalette(mode == ModeInteractive)
}

func (p Palette) Success(text string) string { return p.render(SuccessStyle, text) }
func (p Palette) Warning(text string) string { return p.render(WarningStyle, text) }
func (p Palette) Danger(text string) string { return p.render(DangerStyle, text) }
func (p Palette) Muted(text string) string { return p.render(MutedStyle, text) }

func (p Palette) render(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return style.Render(text)
}
