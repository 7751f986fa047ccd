// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"io"
	"log"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eaglesec/portal-tui/internal/api"
	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/config"
	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/model"
	"github.com/eaglesec/portal-tui/internal/store"
	"github.com/eaglesec/portal-tui/internal/ui/components"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	toasts := components.NewToastManager()
	mgr := auth.New(store.NewMemory(), &http.Client{}, toasts, NewDispatcher(), cfg.API.BaseURL).
		WithLogger(log.New(io.Discard, "", 0))
	t.Cleanup(mgr.StopTokenCheck)
	client := api.New(cfg.API.BaseURL, mgr, nil)
	return NewApp(cfg, mgr, client, datetime.New(time.UTC), toasts)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoginStatusDerivation(t *testing.T) {
	dt := datetime.New(time.UTC)
	now := time.Now()

	cases := []struct {
		lastLogin  string
		wantStatus string
		wantLabel  string
	}{
		{"", model.StatusNever, "Jamais"},
		{datetime.Stamp(now), model.StatusActive, "Actif"},
		{datetime.Stamp(now.Add(-48 * time.Hour)), model.StatusRecent, "Récent"},
		{datetime.Stamp(now.Add(-10 * 24 * time.Hour)), model.StatusInactive, "Inactif"},
	}
	for _, tc := range cases {
		status, label := loginStatus(dt, tc.lastLogin)
		if status != tc.wantStatus || label != tc.wantLabel {
			t.Errorf("loginStatus(%q) = %q, %q; want %q, %q",
				tc.lastLogin, status, label, tc.wantStatus, tc.wantLabel)
		}
	}
}

func TestDetailSanctionEntry(t *testing.T) {
	app := newTestApp(t)
	p := app.employees
	p.mode = employeeModeDetail
	p.file = employeeFileMsg{employee: &model.Employee{ID: 7, Name: "Alice Martin"}}

	p.update(keyRunes("s"))
	if !p.sanction.Focused() {
		t.Fatal("sanction input not focused after 's'")
	}

	p.update(tea.KeyMsg{Type: tea.KeyTab})
	if model.SanctionTypes[p.sanctionType] != "Blâme" {
		t.Fatalf("type after tab = %q", model.SanctionTypes[p.sanctionType])
	}

	p.sanction.SetValue("retard répété")
	cmd := p.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter did not issue the sanction command")
	}
	if p.sanction.Focused() {
		t.Error("input still focused after submit")
	}
}

func TestDetailSanctionEmptyReasonDoesNothing(t *testing.T) {
	app := newTestApp(t)
	p := app.employees
	p.mode = employeeModeDetail
	p.file = employeeFileMsg{employee: &model.Employee{ID: 7}}

	p.update(keyRunes("s"))
	if cmd := p.update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("empty reason issued a command")
	}
}

func TestDetailDeleteTargetsCursorEntry(t *testing.T) {
	app := newTestApp(t)
	p := app.employees
	p.mode = employeeModeDetail
	p.file = employeeFileMsg{
		employee:  &model.Employee{ID: 7},
		notes:     []model.EmployeeNote{{ID: 1, Note: "bon élément"}},
		sanctions: []model.Sanction{{ID: 9, Type: "Blâme", Reason: "absence"}},
	}

	// Cursor starts on the note.
	p.update(keyRunes("x"))
	if !p.confirm.Active || p.confirm.Title != "Supprimer cette note ?" {
		t.Fatalf("confirm = %+v", p.confirm)
	}
	p.confirm.Update(tea.KeyMsg{Type: tea.KeyEsc})

	// One step down lands on the sanction.
	p.update(keyRunes("j"))
	p.update(keyRunes("x"))
	if !p.confirm.Active || p.confirm.Title != "Supprimer cette sanction ?" {
		t.Fatalf("confirm = %+v", p.confirm)
	}
}

func TestDetailCursorStaysInBounds(t *testing.T) {
	app := newTestApp(t)
	p := app.employees
	p.mode = employeeModeDetail
	p.file = employeeFileMsg{
		employee: &model.Employee{ID: 7},
		notes:    []model.EmployeeNote{{ID: 1, Note: "a"}, {ID: 2, Note: "b"}},
	}

	p.update(keyRunes("k"))
	if p.fileCursor != 0 {
		t.Errorf("cursor went above 0: %d", p.fileCursor)
	}
	for i := 0; i < 5; i++ {
		p.update(keyRunes("j"))
	}
	if p.fileCursor != 1 {
		t.Errorf("cursor past last entry: %d", p.fileCursor)
	}
}
