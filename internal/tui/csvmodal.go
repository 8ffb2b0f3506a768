package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// CSVSubmitMsg is sent when the user confirms a path in the CSV modal.
type CSVSubmitMsg struct {
	Path string
}

// CSVModal prompts for the path of a player CSV file to import.
type CSVModal struct {
	input   textinput.Model
	visible bool
}

// NewCSVModal creates a hidden CSV path prompt.
func NewCSVModal() *CSVModal {
	input := textinput.New()
	input.Placeholder = "path/to/players.csv"
	input.Prompt = "> "
	input.SetStyles(inputStyles())
	input.SetWidth(50)

	return &CSVModal{input: input}
}

// Show opens the prompt and focuses the path input.
func (m *CSVModal) Show() tea.Cmd {
	m.visible = true
	return m.input.Focus()
}

// Hide closes the prompt.
func (m *CSVModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// Reset clears the path so the same file can be re-entered on the next
// attempt. Called after every attempt, successful or not.
func (m *CSVModal) Reset() {
	m.input.SetValue("")
}

// IsVisible returns whether the prompt is open.
func (m *CSVModal) IsVisible() bool {
	return m.visible
}

// Value returns the currently entered path.
func (m *CSVModal) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Update handles key input while the prompt is open. Enter submits the path;
// escape cancels.
func (m *CSVModal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			path := m.Value()
			m.Hide()
			return func() tea.Msg {
				return CSVSubmitMsg{Path: path}
			}
		case "esc":
			m.Hide()
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the prompt box.
func (m *CSVModal) View() string {
	if !m.visible {
		return ""
	}

	label := styleLabel.Render("Player CSV file")
	hint := renderHintBar("enter", "upload", "esc", "cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styleSectionTitle.Render("Upload Player CSV"),
		"",
		label,
		m.input.View(),
		"",
		hint,
	)

	return stylePanel.Render(content)
}

// inputStyles returns the shared textinput styling.
func inputStyles() textinput.Styles {
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorText),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
			Prompt:      lipgloss.NewStyle().Foreground(colorBorder),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorSubtext0),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
			Prompt:      lipgloss.NewStyle().Foreground(colorSurface2),
		},
		Cursor: textinput.CursorStyle{
			Color: colorPrimary,
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}
