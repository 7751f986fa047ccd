// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth implements the client-side session lifecycle for the Eagle
// Security portal: token and user persistence, inactivity tracking, periodic
// token refresh and the authenticated HTTP wrapper every API call goes
// through.
//
// # Session model
//
// A session is three entries in a Store: the bearer token, the serialized
// user record and a last-activity timestamp (epoch milliseconds). The session
// expires after one hour without recorded activity. A background check runs
// every 30 seconds: past the timeout it force-logs-out, within the last ten
// minutes before the timeout it refreshes the token against the API so an
// active operator never hits the wall.
//
// # Wiring
//
// The Manager takes all of its capabilities by injection:
//
//	mgr := auth.New(store, httpClient, toasts, router, cfg.APIBase)
//
// The UI forwards input events to RecordActivity, pages guard themselves with
// RequireAuth, and the api package builds requests and sends them through
// Manager.Do.
package auth
