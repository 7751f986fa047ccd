// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the building blocks of the portal UI:
// toast notifications, the session status bar and the confirm dialog.
//
// Toasts are non-blocking: they stack in the bottom-right corner and
// auto-dismiss, so the operator keeps working while they show.
package components

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// Toast display durations per kind, matched to how long each takes to
// read: errors linger, confirmations pass quickly.
const (
	InfoToastDuration    = 5 * time.Second
	SuccessToastDuration = 5 * time.Second
	WarningToastDuration = 6 * time.Second
	ErrorToastDuration   = 7 * time.Second
)

// Toast is one transient notification with a bold title line and a body.
type Toast struct {
	ID        int
	Kind      auth.Kind
	Title     string
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// Expired reports whether the toast should be dismissed.
func (t *Toast) Expired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

func durationFor(kind auth.Kind) time.Duration {
	switch kind {
	case auth.KindError:
		return ErrorToastDuration
	case auth.KindWarning:
		return WarningToastDuration
	case auth.KindSuccess:
		return SuccessToastDuration
	default:
		return InfoToastDuration
	}
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// maxToasts bounds the visible stack; older toasts drop off first.
const maxToasts = 5

// ToastManager owns the toast stack. Safe for concurrent use: the session
// manager's background goroutine pushes into it while the UI goroutine
// renders.
type ToastManager struct {
	mu     sync.Mutex
	toasts []Toast
	nextID int
}

// NewToastManager returns an empty manager.
func NewToastManager() *ToastManager {
	return &ToastManager{nextID: 1}
}

// Notify pushes a toast. Implements auth.Notifier.
func (m *ToastManager) Notify(kind auth.Kind, title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := Toast{
		ID:        m.nextID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  durationFor(kind),
	}
	m.nextID++
	m.toasts = append([]Toast{t}, m.toasts...)
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[:maxToasts]
	}
}

// Tick drops expired toasts and returns the survivors, newest first.
func (m *ToastManager) Tick() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	active := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.Expired() {
			active = append(active, t)
		}
	}
	m.toasts = active
	return append([]Toast(nil), m.toasts...)
}

// Toasts returns a copy of the current stack.
func (m *ToastManager) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Toast(nil), m.toasts...)
}

// Clear drops everything.
func (m *ToastManager) Clear() {
	m.mu.Lock()
	m.toasts = nil
	m.mu.Unlock()
}

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// ToastTickMsg drives toast expiry; the app re-issues ToastTickCmd on
// every tick.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd schedules the next toast tick.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

func toastChrome(kind auth.Kind) (lipgloss.AdaptiveColor, string) {
	switch kind {
	case auth.KindError:
		return styles.Rose, styles.StatusIndicators.Error
	case auth.KindWarning:
		return styles.Amber, styles.StatusIndicators.Warning
	case auth.KindSuccess:
		return styles.Emerald, styles.StatusIndicators.Success
	default:
		return styles.Cyan, styles.StatusIndicators.Info
	}
}

// RenderToast renders one toast box.
func RenderToast(t Toast, width int) string {
	maxWidth := 56
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 28 {
		maxWidth = 28
	}

	color, icon := toastChrome(t.Kind)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary).Width(maxWidth - 6)

	content := titleStyle.Render(icon + " " + t.Title)
	if t.Message != "" {
		content += "\n" + bodyStyle.Render(t.Message)
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(content)
}

// RenderToastStack renders the stack anchored bottom-right.
func RenderToastStack(toasts []Toast, width, height int) string {
	if len(toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, RenderToast(t, width))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	stack = lipgloss.NewStyle().MarginRight(2).MarginBottom(1).Render(stack)
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, stack)
	}
	return stack
}

// wrap is a plain word wrap used by dialogs.
func wrap(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var lines []string
	var line strings.Builder
	for _, w := range words {
		switch {
		case line.Len() == 0:
			line.WriteString(w)
		case line.Len()+1+len(w) <= maxWidth:
			line.WriteString(" ")
			line.WriteString(w)
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(w)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
