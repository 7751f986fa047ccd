// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package datetime

import (
	"testing"
	"time"
)

func brussels(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Brussels")
	if err != nil {
		t.Fatalf("load Europe/Brussels: %v", err)
	}
	return loc
}

// fixed pins the formatter's idea of "now" for relative tests.
func fixed(t *testing.T, now time.Time) *Formatter {
	t.Helper()
	f := New(brussels(t))
	f.now = func() time.Time { return now }
	return f
}

func TestParseBareSQLDatetimeIsUTC(t *testing.T) {
	got, err := Parse("2026-02-16 14:30:00")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2026, 2, 16, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParseRFC3339(t *testing.T) {
	got, err := Parse("2026-02-16T14:30:00Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.Equal(time.Date(2026, 2, 16, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("Parse = %v", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "hier", "16/02/2026"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded", s)
		}
	}
}

func TestFormatWinterOffset(t *testing.T) {
	f := New(brussels(t))
	// February: Brussels is UTC+1.
	if got := f.Format("2026-02-16 14:30:00"); got != "16/02/2026 15:30" {
		t.Errorf("Format = %q, want 16/02/2026 15:30", got)
	}
}

func TestFormatSummerOffset(t *testing.T) {
	f := New(brussels(t))
	// July: Brussels is UTC+2.
	if got := f.Format("2026-07-16 14:30:00"); got != "16/07/2026 16:30" {
		t.Errorf("Format = %q, want 16/07/2026 16:30", got)
	}
}

func TestFormatDate(t *testing.T) {
	f := New(brussels(t))
	if got := f.FormatDate("2026-02-16 23:30:00"); got != "17/02/2026" {
		t.Errorf("FormatDate = %q, want next local day 17/02/2026", got)
	}
	if got := f.FormatDate("pas une date"); got != Placeholder {
		t.Errorf("FormatDate garbage = %q, want %q", got, Placeholder)
	}
}

func TestFormatDateLong(t *testing.T) {
	f := New(brussels(t))
	if got := f.FormatDateLong("2026-02-16 10:00:00"); got != "16 février 2026" {
		t.Errorf("FormatDateLong = %q", got)
	}
	if got := f.FormatDateLong("2026-08-01 10:00:00"); got != "1 août 2026" {
		t.Errorf("FormatDateLong = %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	f := New(brussels(t))
	if got := f.FormatTime("2026-02-16 08:05:00"); got != "09:05" {
		t.Errorf("FormatTime = %q, want 09:05", got)
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)
	f := fixed(t, now)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "À l'instant"},
		{time.Minute, "Il y a 1 minute"},
		{45 * time.Minute, "Il y a 45 minutes"},
		{time.Hour, "Il y a 1 heure"},
		{23 * time.Hour, "Il y a 23 heures"},
		{26 * time.Hour, "Il y a 1 jour"},
		{6 * 24 * time.Hour, "Il y a 6 jours"},
		{8 * 24 * time.Hour, "Il y a 1 semaine"},
		{21 * 24 * time.Hour, "Il y a 3 semaines"},
		{45 * 24 * time.Hour, "Il y a 1 mois"},
		{200 * 24 * time.Hour, "Il y a 6 mois"},
		{400 * 24 * time.Hour, "Il y a 1 an"},
		{800 * 24 * time.Hour, "Il y a 2 ans"},
	}
	for _, c := range cases {
		s := Stamp(now.Add(-c.ago))
		if got := f.Relative(s); got != c.want {
			t.Errorf("Relative(-%v) = %q, want %q", c.ago, got, c.want)
		}
	}
}

func TestRelativeNever(t *testing.T) {
	f := New(brussels(t))
	if got := f.Relative(""); got != Never {
		t.Errorf("Relative(\"\") = %q, want %q", got, Never)
	}
}

func TestIsToday(t *testing.T) {
	// 23:30 UTC on the 16th is already the 17th in Brussels.
	now := time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)
	f := fixed(t, now)

	if !f.IsToday("2026-02-16 23:30:00") {
		t.Error("23:30 UTC the day before is today in Brussels")
	}
	if f.IsToday("2026-02-16 12:00:00") {
		t.Error("noon the day before is not today")
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)
	f := fixed(t, now)

	got, ok := f.DaysSince("2026-02-06 12:00:00")
	if !ok || got != 10 {
		t.Errorf("DaysSince = %d,%v want 10,true", got, ok)
	}
	if _, ok := f.DaysSince("n/a"); ok {
		t.Error("DaysSince parsed garbage")
	}
}
