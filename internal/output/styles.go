package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: routes and file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks expanded (per-file) rendering.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (routes, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, tokens).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Rendering mode labels.
const (
	ModeBundled  = "bundled"
	ModeExpanded = "expanded"
)

// ModeLabel returns the label for the pipeline mode.
func ModeLabel(enabled bool) string {
	if enabled {
		return ModeBundled
	}
	return ModeExpanded
}

// ModeStyle returns the style for a rendering mode label.
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case ModeBundled:
		return lipgloss.NewStyle().Foreground(ColorGreenCheck)
	case ModeExpanded:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps tokens aligned in fingerprint output.
const minPathColumnWidth = 40

// FormatTokenLine renders a path with its right-aligned version token.
func FormatTokenLine(path, token string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}
	return StyleNoun.Render(path) + strings.Repeat(" ", padding) + StyleDim.Render(token)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatRenderSummary summarizes a render run.
func FormatRenderSummary(files int, enabled bool) string {
	mode := ModeLabel(enabled)
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	return FormatCheckmark(StyleSummary.Render(fmt.Sprintf("Rendered %d %s", files, noun)) +
		" " + StyleDim.Render("(") + ModeStyle(mode).Render(mode) + StyleDim.Render(")"))
}
