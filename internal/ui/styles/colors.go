// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Eagle portal.
// All colors use Lip Gloss AdaptiveColor so the portal reads well on both
// light and dark terminals.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Gold - Primary accent, the Eagle Security brand color
var Gold = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// GoldDeep - Darker gold for selected rows and active tabs
var GoldDeep = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#78350F"}

// Slate - Secondary accent, headers and chrome
var Slate = lipgloss.AdaptiveColor{Light: "#334155", Dark: "#94A3B8"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Cyan - Informational states
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states, active employees
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, sanctions, destructive actions
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, pending states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Headers, footers, toast backgrounds
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#E4E4E7"}

// TextMuted - Hints, placeholders, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#71717A", Dark: "#A1A1AA"}

// TextInverted - Text on accent backgrounds
var TextInverted = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#18181B"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are the icons used in toasts and status columns.
var StatusIndicators = struct {
	Info    string
	Success string
	Warning string
	Error   string
}{
	Info:    "ℹ",
	Success: "✓",
	Warning: "⚠",
	Error:   "✗",
}
