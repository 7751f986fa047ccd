// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/model"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
	"github.com/eaglesec/portal-tui/internal/util"
)

// StatusBar is the bottom chrome: who is logged in, how much session time
// remains, and the global key hints.
type StatusBar struct {
	Width int
}

// sessionCountdown formats the remaining session time, highlighting the
// last ten minutes when the background refresh is in play.
func sessionCountdown(idle time.Duration) (string, bool) {
	remaining := auth.InactivityTimeout - idle
	if remaining < 0 {
		remaining = 0
	}
	warn := remaining < auth.RefreshWindow
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs), warn
}

// Render draws the bar for the given session state. user may be nil
// (login page).
func (b StatusBar) Render(user *model.User, idle time.Duration, hints string) string {
	left := "Eagle Security"
	if user != nil {
		left = fmt.Sprintf("%s · #%s · %s", user.Name, user.Badge(), user.RankName)
	}

	right := ""
	if user != nil {
		countdown, warn := sessionCountdown(idle)
		if warn {
			right = styles.Danger.Render("session " + countdown)
		} else {
			right = styles.Hint.Render("session " + countdown)
		}
	}

	leftPart := styles.HeaderBar.Render(util.TruncateWidth(left, b.Width/2))
	hintPart := styles.Hint.Render(hints)

	gap := b.Width - lipgloss.Width(leftPart) - lipgloss.Width(hintPart) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	filler := lipgloss.NewStyle().Width(gap).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Center, leftPart, " ", hintPart, filler, right)
}
