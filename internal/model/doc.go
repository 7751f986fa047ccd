// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the data records exchanged with the Eagle Security
// worker API: staff accounts, the employee roster, disciplinary records and
// public contact submissions.
//
// All records mirror the JSON the API produces. Timestamps arrive as SQL
// datetime strings in UTC and are kept as strings here; the datetime package
// owns parsing and display formatting.
package model
