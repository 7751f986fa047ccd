// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/model"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
)

// dashStatsMsg carries the landing-page counters.
type dashStatsMsg struct {
	employees  int
	newPending int
	err        error
}

// logoutNowMsg fires after the goodbye toast had a moment on screen.
type logoutNowMsg struct{}

type dashboardPage struct {
	app *App

	cursor  int
	entries []string

	haveStats  bool
	employees  int
	newPending int
}

func newDashboardPage(a *App) *dashboardPage {
	return &dashboardPage{
		app:     a,
		entries: []string{"Employés", "Candidatures & plaintes", "Déconnexion"},
	}
}

func (p *dashboardPage) enter() tea.Cmd {
	if !p.app.mgr.RequireAuth() {
		return nil
	}
	p.cursor = 0
	return p.loadStats()
}

func (p *dashboardPage) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), p.app.cfg.API.Timeout())
		defer cancel()
		employees, err := p.app.api.Employees(ctx)
		if err != nil {
			return dashStatsMsg{err: err}
		}
		subs, err := p.app.api.Submissions(ctx)
		if err != nil {
			return dashStatsMsg{err: err}
		}
		pending := 0
		for _, s := range subs {
			if s.Status == model.SubmissionPending {
				pending++
			}
		}
		return dashStatsMsg{employees: len(employees), newPending: pending}
	}
}

func (p *dashboardPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashStatsMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.haveStats = true
		p.employees = msg.employees
		p.newPending = msg.newPending
		return nil

	case logoutNowMsg:
		p.app.mgr.Logout(false)
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.entries)-1 {
				p.cursor++
			}
		case "enter":
			return p.activate()
		}
	}
	return nil
}

func (p *dashboardPage) activate() tea.Cmd {
	switch p.cursor {
	case 0:
		return func() tea.Msg { return NavigateMsg{Route: routeEmployees} }
	case 1:
		return func() tea.Msg { return NavigateMsg{Route: routeSubmissions} }
	default:
		// Say goodbye first, then end the session without a second
		// notification.
		p.app.toasts.Notify(auth.KindInfo, "Déconnexion", "À bientôt.")
		return tea.Tick(time.Second, func(time.Time) tea.Msg { return logoutNowMsg{} })
	}
}

func (p *dashboardPage) view(width, height int) string {
	user := p.app.mgr.User()
	if user == nil {
		return ""
	}

	card := styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(user.Name),
		styles.Value.Render(fmt.Sprintf("Badge #%s · %s", user.Badge(), user.RankName)),
		styles.Hint.Render(user.Email),
	))

	stats := styles.Hint.Render("Chargement des statistiques...")
	if p.haveStats {
		stats = lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Value.Render(fmt.Sprintf("%d employés", p.employees)),
			styles.Hint.Render("  ·  "),
			styles.Value.Render(fmt.Sprintf("%d nouvelle(s) demande(s)", p.newPending)),
		)
	}

	var menu string
	for i, entry := range p.entries {
		line := "  " + entry
		if i == p.cursor {
			line = styles.Selected.Render("> " + entry)
		}
		menu += line + "\n"
	}

	body := lipgloss.JoinVertical(lipgloss.Left, card, "", stats, "", menu)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *dashboardPage) hints() string {
	return "↑/↓ naviguer · entrée ouvrir"
}
