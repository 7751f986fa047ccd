// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/model"
)

const rule = "========================================"

var frenchDays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// EmployeesTXT renders the roster as the portal's text report.
func EmployeesTXT(employees []model.Employee, f *datetime.Formatter, now time.Time) []byte {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("   EAGLE SECURITY - LISTE DES EMPLOYÉS\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Date d'export: %s %s\n", frenchDays[now.Weekday()], f.FormatDateLong(datetime.Stamp(now)))
	fmt.Fprintf(&b, "Nombre total: %d employé(s)\n\n", len(employees))
	b.WriteString(rule + "\n\n")

	for i, e := range employees {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Name)
		fmt.Fprintf(&b, "   Badge: #%s\n", e.Badge())
		fmt.Fprintf(&b, "   Grade: %s\n", orDefault(e.RankName, "N/A"))
		fmt.Fprintf(&b, "   Email: %s\n", e.Email)
		fmt.Fprintf(&b, "   Téléphone: %s\n", orDefault(e.Phone, "Non renseigné"))
		fmt.Fprintf(&b, "   Date d'arrivée: %s\n", f.FormatDate(e.HiredDate))
		if e.LastLogin == "" {
			b.WriteString("   Dernier login: Jamais connecté\n")
		} else {
			fmt.Fprintf(&b, "   Dernier login: %s\n", f.FormatDate(e.LastLogin))
		}
		b.WriteString("\n" + strings.Repeat("-", 50) + "\n\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString("Fin du rapport\n")
	b.WriteString(rule + "\n")
	return []byte(b.String())
}

// WriteEmployeesTXT writes the roster report as employees_YYYY-MM-DD.txt
// and returns the path.
func (o *Options) WriteEmployeesTXT(employees []model.Employee, f *datetime.Formatter, now time.Time) (string, error) {
	return o.write(datedName("employees", ".txt", now), EmployeesTXT(employees, f, now))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
