// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// deps.go - Injected capabilities of the session manager.

package auth

import "time"

// Store is the persistent string key-value store backing the session.
// Implementations live in internal/store (bbolt-backed for the real app,
// in-memory for tests).
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool)

	// Set writes key to value, creating it if absent.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Kind classifies a user-facing notification.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

// Notifier shows transient notifications to the operator. The TUI toast
// stack implements it.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// Navigator switches the visible page. GoToLater defers the switch so a
// notification shown alongside it stays readable.
type Navigator interface {
	GoTo(route string)
	GoToLater(route string, delay time.Duration)
}

// Page routes known to the session manager.
const (
	RouteLogin     = "login"
	RouteDashboard = "dashboard"
)
