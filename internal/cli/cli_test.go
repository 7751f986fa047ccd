// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseWith(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"eagle-portal"}, argv...)
	t.Cleanup(func() { os.Args = old })
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseWith(t)
	if cmd != CmdTUI {
		t.Fatalf("cmd = %v, want CmdTUI", cmd)
	}
}

func TestParseLoginWithEmail(t *testing.T) {
	cmd, args := parseWith(t, "login", "agent@eagle-security.be")
	if cmd != CmdLogin {
		t.Fatalf("cmd = %v, want CmdLogin", cmd)
	}
	if args.Email != "agent@eagle-security.be" {
		t.Fatalf("email = %q", args.Email)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseWith(t, "--json", "--config=/tmp/portal.toml", "whoami")
	if cmd != CmdWhoami {
		t.Fatalf("cmd = %v, want CmdWhoami", cmd)
	}
	if !args.JSON {
		t.Fatal("JSON flag not set")
	}
	if args.Config != "/tmp/portal.toml" {
		t.Fatalf("config = %q", args.Config)
	}
}

func TestParseExport(t *testing.T) {
	cmd, args := parseWith(t, "export", "submissions", "--output", "/tmp/out")
	if cmd != CmdExport {
		t.Fatalf("cmd = %v, want CmdExport", cmd)
	}
	if args.Subcommand != "submissions" {
		t.Fatalf("subcommand = %q", args.Subcommand)
	}
	if args.Output != "/tmp/out" {
		t.Fatalf("output = %q", args.Output)
	}
}

func TestParseUnknownFallsBackToHelp(t *testing.T) {
	cmd, _ := parseWith(t, "frobnicate")
	if cmd != CmdHelp {
		t.Fatalf("cmd = %v, want CmdHelp", cmd)
	}
}
