package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Dialog is a blocking modal alert. While visible it consumes all key input
// until acknowledged, mirroring a browser alert.
type Dialog struct {
	title   string
	message string
	button  string
	visible bool
	onClose func() tea.Cmd
}

// NewDialog creates a hidden dialog.
func NewDialog() *Dialog {
	return &Dialog{button: "OK"}
}

// Show displays the dialog with the given title and message.
func (d *Dialog) Show(title, message string, onClose func() tea.Cmd) {
	d.title = title
	d.message = message
	d.visible = true
	d.onClose = onClose
}

// Hide closes the dialog.
func (d *Dialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible.
func (d *Dialog) IsVisible() bool {
	return d.visible
}

// Message returns the current message text (empty when hidden).
func (d *Dialog) Message() string {
	if !d.visible {
		return ""
	}
	return d.message
}

// Update handles dialog input. All keys are consumed while visible;
// enter, space and escape acknowledge.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if !d.visible {
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter", " ", "space", "esc":
			d.Hide()
			if d.onClose != nil {
				return d.onClose()
			}
		}
	}
	return nil
}

// View renders the dialog box.
func (d *Dialog) View() string {
	if !d.visible {
		return ""
	}

	messageWidth := lipgloss.Width(d.message)
	titleWidth := lipgloss.Width(d.title)
	contentWidth := messageWidth
	if titleWidth > contentWidth {
		contentWidth = titleWidth
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Width(contentWidth).
		Align(lipgloss.Center)

	messageStyle := lipgloss.NewStyle().
		Foreground(colorText).
		Width(contentWidth).
		Align(lipgloss.Center)

	buttonStyle := lipgloss.NewStyle().
		Foreground(colorBase).
		Background(colorPrimary).
		Padding(0, 2)

	buttonLine := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(buttonStyle.Render(d.button))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(d.title),
		"",
		messageStyle.Render(d.message),
		"",
		buttonLine,
	)

	return stylePanel.Render(content)
}
