// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateWidth(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Jean Dupont", 20, "Jean Dupont"},
		{"Jean Dupont", 6, "Jean …"},
		{"Jean", 0, ""},
		{"Jean", 1, "…"},
		{"", 5, ""},
	}
	for _, c := range cases {
		if got := TruncateWidth(c.in, c.width); got != c.want {
			t.Errorf("TruncateWidth(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestPadWidth(t *testing.T) {
	if got := PadWidth("ab", 5); got != "ab   " {
		t.Errorf("PadWidth = %q", got)
	}
	if got := PadWidth("abcdef", 3); len([]rune(got)) != 3 {
		t.Errorf("PadWidth did not truncate: %q", got)
	}
}

func TestSortFrench(t *testing.T) {
	names := []string{"Zoé", "Émile", "alice", "Bernard", "emma"}
	SortFrench(names, func(s string) string { return s })

	want := []string{"alice", "Bernard", "Émile", "emma", "Zoé"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}
