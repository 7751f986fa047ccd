// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/ui/styles"
)

// Confirm is a modal yes/no dialog. The page keeps it in its model and
// routes key messages here while Active.
type Confirm struct {
	Active  bool
	Title   string
	Message string

	// onYes runs when the operator confirms.
	onYes tea.Cmd
}

// Ask arms the dialog.
func (c *Confirm) Ask(title, message string, onYes tea.Cmd) {
	c.Active = true
	c.Title = title
	c.Message = message
	c.onYes = onYes
}

// Update handles a key press while the dialog is up. Returns the command
// to run (nil unless confirmed).
func (c *Confirm) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "o", "enter":
		// "o" for "oui"; enter confirms too.
		cmd := c.onYes
		c.reset()
		return cmd
	case "n", "esc", "q":
		c.reset()
	}
	return nil
}

func (c *Confirm) reset() {
	c.Active = false
	c.onYes = nil
}

// Render draws the dialog centered in the viewport.
func (c *Confirm) Render(width, height int) string {
	if !c.Active {
		return ""
	}
	title := styles.Danger.Render(c.Title)
	body := lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(wrap(c.Message, 46))
	hint := styles.Hint.Render("[o]ui  [n]on")

	box := styles.Box.
		BorderForeground(styles.Rose).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
