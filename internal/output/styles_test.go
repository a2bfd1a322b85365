package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestModeLabel(t *testing.T) {
	assert.Equal(t, ModeBundled, ModeLabel(true))
	assert.Equal(t, ModeExpanded, ModeLabel(false))
}

func TestModeStyle(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		wantFG lipgloss.TerminalColor
	}{
		{name: "bundled returns green", mode: ModeBundled, wantFG: ColorGreenCheck},
		{name: "expanded returns yellow", mode: ModeExpanded, wantFG: ColorYellow},
		{name: "unknown returns no color", mode: "other", wantFG: lipgloss.NoColor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFG, ModeStyle(tt.mode).GetForeground())
		})
	}
}

func TestFormatTokenLine(t *testing.T) {
	line := FormatTokenLine("/js/a.js", "abc123")
	assert.Contains(t, line, "/js/a.js")
	assert.Contains(t, line, "abc123")

	long := strings.Repeat("x", 60)
	assert.Contains(t, FormatTokenLine(long, "t"), long)
}

func TestFormatRenderSummary(t *testing.T) {
	assert.Contains(t, FormatRenderSummary(1, true), "Rendered 1 file")
	assert.Contains(t, FormatRenderSummary(3, false), "Rendered 3 files")
	assert.Contains(t, FormatRenderSummary(3, false), ModeExpanded)
}
