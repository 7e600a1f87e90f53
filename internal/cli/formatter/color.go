package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor replaces every style with a plain passthrough, for piped
// or redirected output.
func DisableColor() {
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// ClosedMarker renders the closed flag of a record.
func ClosedMarker(closed bool) string {
	if closed {
		return StyleDim.Render("closed")
	}
	return StyleGreen.Render("open")
}
