// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme.go - Shared lipgloss styles and terminal setup.

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Init pins the lipgloss renderer to the detected terminal profile and the
// configured theme. Call once before the first render.
func Init(theme string) {
	lipgloss.SetColorProfile(termenv.ColorProfile())
	lipgloss.SetHasDarkBackground(theme != "light")
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// Title heads each page.
	Title = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		Padding(0, 1)

	// Subtitle sits under the title: counts, filters, context.
	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)

	// Label renders field names in detail views and forms.
	Label = lipgloss.NewStyle().
		Foreground(Slate).
		Bold(true)

	// Value renders field values next to a Label.
	Value = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Hint renders key bindings at the bottom of a page.
	Hint = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Selected marks the active row or menu entry.
	Selected = lipgloss.NewStyle().
			Foreground(TextInverted).
			Background(Gold).
			Bold(true)

	// Danger marks destructive actions and sanction rows.
	Danger = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Success marks active status and confirmations.
	Success = lipgloss.NewStyle().
		Foreground(Emerald)

	// Box frames detail views and dialogs.
	Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	// HeaderBar is the top chrome of every page.
	HeaderBar = lipgloss.NewStyle().
			Background(SurfaceDim).
			Foreground(TextPrimary).
			Padding(0, 1)
)

// StatusStyle maps a derived login status to its display style.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "active":
		return Success
	case "recent":
		return lipgloss.NewStyle().Foreground(Amber)
	default:
		return lipgloss.NewStyle().Foreground(TextMuted)
	}
}
