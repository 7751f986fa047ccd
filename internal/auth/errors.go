// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import "errors"

// Sentinel errors returned by the authenticated request path. Transport
// errors from the underlying http.Client are returned as-is, never wrapped
// in these.
var (
	// ErrNotAuthenticated is returned by Do when no token is stored.
	// No network request is made.
	ErrNotAuthenticated = errors.New("non authentifié")

	// ErrSessionExpired is returned by Do when the session has timed out
	// locally or the server answered 401. The manager has already logged
	// the operator out by the time the caller sees it.
	ErrSessionExpired = errors.New("session expirée")
)
