// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the client for the Eagle Security worker API.
//
// Authenticated calls are sent through the session manager, which injects
// the bearer token and enforces expiry; login and the public contact form
// bypass it. Every response uses the worker's envelope: a success flag plus
// an optional message, with the payload alongside. Envelope failures and
// non-2xx statuses surface as *APIError.
package api
