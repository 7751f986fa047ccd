// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small display helpers shared by the portal UI and
// exports: width-aware truncation for table cells and French-aware name
// sorting for the roster.
package util

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TruncateWidth fits a string into maxWidth terminal columns, accounting
// for double-width characters, appending "…" when something was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadWidth pads a string with spaces to exactly maxWidth columns,
// truncating first when it is too long.
func PadWidth(s string, maxWidth int) string {
	s = TruncateWidth(s, maxWidth)
	return s + strings.Repeat(" ", maxWidth-runewidth.StringWidth(s))
}

// frCollator orders strings the way a French speaker expects: accents and
// case do not break alphabetical order ("Émile" sorts with "Emile").
var frCollator = collate.New(language.French, collate.IgnoreCase)

// SortFrench sorts items alphabetically with French collation, using key
// to extract the sort string.
func SortFrench[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return frCollator.CompareString(key(items[i]), key(items[j])) < 0
	})
}
