package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette (Catppuccin Mocha)
var (
	colorBase     = lipgloss.Color("#1e1e2e") // Base
	colorPrimary  = lipgloss.Color("#cba6f7") // Mauve
	colorText     = lipgloss.Color("#cdd6f4") // Text
	colorSubtext0 = lipgloss.Color("#a6adc8") // Subtext0
	colorSubtext1 = lipgloss.Color("#bac2de") // Subtext1
	colorSurface1 = lipgloss.Color("#45475a") // Surface1
	colorSurface2 = lipgloss.Color("#585b70") // Surface2
	colorSuccess  = lipgloss.Color("#a6e3a1") // Green
	colorWarning  = lipgloss.Color("#f9e2af") // Yellow
	colorError    = lipgloss.Color("#f38ba8") // Red
	colorAccent   = lipgloss.Color("#89b4fa") // Blue
	colorBorder   = lipgloss.Color("#b4befe") // Lavender
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleSectionTitle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleLabelFocused = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	styleRequiredMark = lipgloss.NewStyle().
				Foreground(colorError)

	styleFieldError = lipgloss.NewStyle().
			Foreground(colorError)

	styleTab = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 2)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 2).
			Underline(true)

	styleStatsBar = lipgloss.NewStyle().
			Foreground(colorSubtext1)

	styleStatValue = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	styleNoticeSuccess = lipgloss.NewStyle().
				Foreground(colorSuccess)

	styleNoticeError = lipgloss.NewStyle().
				Foreground(colorError)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	stylePrice = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	styleConfidenceFill = lipgloss.NewStyle().
				Foreground(colorSuccess)

	styleConfidenceTrack = lipgloss.NewStyle().
				Foreground(colorSurface1)

	styleEnumValue = lipgloss.NewStyle().
			Foreground(colorText)

	styleEnumArrow = lipgloss.NewStyle().
			Foreground(colorSurface2)

	styleEnumArrowFocused = lipgloss.NewStyle().
				Foreground(colorPrimary)
)

// Hint bar styles
var (
	styleHintKey = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Bold(true)

	styleHintDesc = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleHintSeparator = lipgloss.NewStyle().
				Foreground(colorSurface2)
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next field", "enter", "predict")
// Returns: "tab next field • enter predict"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var result string
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		desc := pairs[i+1]

		if i > 0 {
			result += " " + styleHintSeparator.Render("•") + " "
		}

		result += styleHintKey.Render(key) + " " + styleHintDesc.Render(desc)
	}

	return result
}
