// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments and runs the headless
// subcommands of the staff portal binary.
package cli
