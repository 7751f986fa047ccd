// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/model"
)

func testFormatter(t *testing.T) *datetime.Formatter {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Brussels")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return datetime.New(loc)
}

func TestEmployeesTXT(t *testing.T) {
	now := time.Date(2026, 2, 16, 10, 0, 0, 0, time.UTC) // a Monday
	employees := []model.Employee{
		{ID: 7, Name: "Alice Martin", Email: "alice@eagle-security.be", RankName: "Agent", HiredDate: "2025-03-01 09:00:00"},
		{ID: 42, Name: "Jean Dupont", Email: "jean@eagle-security.be", Phone: "+32470000000", RankName: "Superviseur", HiredDate: "2024-06-15 09:00:00", LastLogin: "2026-02-15 18:00:00"},
	}

	out := string(EmployeesTXT(employees, testFormatter(t), now))

	for _, want := range []string{
		"EAGLE SECURITY - LISTE DES EMPLOYÉS",
		"Date d'export: lundi 16 février 2026",
		"Nombre total: 2 employé(s)",
		"1. Alice Martin",
		"Badge: #0007",
		"Téléphone: Non renseigné",
		"Dernier login: Jamais connecté",
		"2. Jean Dupont",
		"Badge: #0042",
		"Dernier login: 15/02/2026",
		"Fin du rapport",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteEmployeesTXTFilename(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{OutputDir: dir}
	now := time.Date(2026, 2, 16, 10, 0, 0, 0, time.UTC)

	path, err := opts.WriteEmployeesTXT(nil, testFormatter(t), now)
	if err != nil {
		t.Fatalf("WriteEmployeesTXT: %v", err)
	}
	if filepath.Base(path) != "employees_2026-02-16.txt" {
		t.Errorf("filename = %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestSubmissionsCSV(t *testing.T) {
	subs := []model.Submission{
		{ID: 5, FormType: model.FormComplaint, Nom: "Durand, René", Email: "r@example.test", Status: model.SubmissionPending, SubmittedAt: "2026-02-16 08:00:00"},
	}
	data, err := SubmissionsCSV(subs, testFormatter(t))
	if err != nil {
		t.Fatalf("SubmissionsCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("re-read CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][1] != "Plainte" || rows[1][2] != "Durand, René" || rows[1][5] != "En attente" {
		t.Errorf("row = %v", rows[1])
	}
}

func TestWriteCV(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	formData, _ := json.Marshal(model.RecruitmentData{
		Motivation: "motivé",
		CVFilename: "cv_rene.pdf",
		CVBase64:   base64.StdEncoding.EncodeToString(pdf),
	})
	sub := &model.Submission{ID: 9, FormType: model.FormRecruitment, FormData: string(formData)}

	dir := t.TempDir()
	path, err := (&Options{OutputDir: dir}).WriteCV(sub)
	if err != nil {
		t.Fatalf("WriteCV: %v", err)
	}
	if filepath.Base(path) != "cv_rene.pdf" {
		t.Errorf("filename = %s", filepath.Base(path))
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != string(pdf) {
		t.Errorf("CV content did not round-trip: %v", err)
	}
}

func TestWriteCVRequiresRecruitment(t *testing.T) {
	sub := &model.Submission{ID: 9, FormType: model.FormComplaint, FormData: "{}"}
	if _, err := (&Options{OutputDir: t.TempDir()}).WriteCV(sub); err == nil {
		t.Error("WriteCV accepted a complaint")
	}
}
