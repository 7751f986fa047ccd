// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package datetime formats the API's timestamps for display.
//
// The worker stores SQL datetimes in UTC without a zone marker; everything
// shown to the operator is converted to the portal timezone (Europe/Brussels
// by default) and rendered in French.
package datetime

import (
	"fmt"
	"strings"
	"time"
)

// Placeholder shown for absent or unparseable timestamps.
const Placeholder = "N/A"

// Never is shown where a relative time has no value (e.g. last login of an
// account that never logged in).
const Never = "Jamais"

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Formatter renders UTC timestamps in a fixed location. The zero value is
// not usable; build one with New.
type Formatter struct {
	loc *time.Location

	// now is replaced in tests.
	now func() time.Time
}

// New returns a Formatter for loc. A nil loc means UTC.
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc, now: time.Now}
}

// Parse reads a timestamp from the API. Accepts RFC 3339 and the bare SQL
// form "2006-01-02 15:04:05", which is taken as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	// A zone marker means the string is self-describing.
	if strings.ContainsAny(s, "Z+") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Format renders "DD/MM/YYYY HH:MM" in the portal timezone.
func (f *Formatter) Format(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Placeholder
	}
	return t.In(f.loc).Format("02/01/2006 15:04")
}

// FormatDate renders "DD/MM/YYYY".
func (f *Formatter) FormatDate(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Placeholder
	}
	return t.In(f.loc).Format("02/01/2006")
}

// FormatDateLong renders "16 février 2026".
func (f *Formatter) FormatDateLong(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Placeholder
	}
	t = t.In(f.loc)
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// FormatTime renders "HH:MM".
func (f *Formatter) FormatTime(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Placeholder
	}
	return t.In(f.loc).Format("15:04")
}

// Relative renders a French relative time: "À l'instant", "Il y a 3 jours",
// "Il y a 2 mois". Absent timestamps read "Jamais".
func (f *Formatter) Relative(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Never
	}

	d := f.now().Sub(t)
	seconds := int(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case seconds < 60:
		return "À l'instant"
	case minutes < 60:
		return fmt.Sprintf("Il y a %d minute%s", minutes, plural(minutes))
	case hours < 24:
		return fmt.Sprintf("Il y a %d heure%s", hours, plural(hours))
	case days < 7:
		return fmt.Sprintf("Il y a %d jour%s", days, plural(days))
	case days < 30:
		weeks := days / 7
		return fmt.Sprintf("Il y a %d semaine%s", weeks, plural(weeks))
	case days < 365:
		return fmt.Sprintf("Il y a %d mois", days/30)
	default:
		years := days / 365
		return fmt.Sprintf("Il y a %d an%s", years, plural(years))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// IsToday reports whether the timestamp falls on today's date in the
// portal timezone.
func (f *Formatter) IsToday(s string) bool {
	t, err := Parse(s)
	if err != nil {
		return false
	}
	y1, m1, d1 := t.In(f.loc).Date()
	y2, m2, d2 := f.now().In(f.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsThisWeek reports whether the timestamp is within the past seven days.
func (f *Formatter) IsThisWeek(s string) bool {
	t, err := Parse(s)
	if err != nil {
		return false
	}
	d := f.now().Sub(t)
	return d >= 0 && d < 7*24*time.Hour
}

// IsThisMonth reports whether the timestamp falls in the current calendar
// month in the portal timezone.
func (f *Formatter) IsThisMonth(s string) bool {
	t, err := Parse(s)
	if err != nil {
		return false
	}
	y1, m1, _ := t.In(f.loc).Date()
	y2, m2, _ := f.now().In(f.loc).Date()
	return y1 == y2 && m1 == m2
}

// DaysSince returns full days elapsed since the timestamp; negative for
// future dates. False when the timestamp does not parse.
func (f *Formatter) DaysSince(s string) (int, bool) {
	t, err := Parse(s)
	if err != nil {
		return 0, false
	}
	return int(f.now().Sub(t).Hours() / 24), true
}

// Stamp renders t as the API wire form (RFC 3339 UTC).
func Stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
