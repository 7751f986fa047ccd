// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the persistent key-value store behind the portal
// session. The bbolt-backed implementation keeps the session alive across
// restarts of the app; the in-memory one serves tests and the --ephemeral
// flag.
package store
