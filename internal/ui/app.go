// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui is the Bubble Tea front end of the portal: a login page, the
// dashboard, the employee roster and the submission triage queue, with the
// session manager wired into every input event and page switch.
package ui

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/api"
	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/config"
	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/ui/components"
)

// =============================================================================
// NAVIGATION
// =============================================================================

// NavigateMsg switches the visible page.
type NavigateMsg struct {
	Route string
}

// Dispatcher feeds messages into the running program from outside the
// Bubble Tea loop: the session manager's background check and delayed
// navigations land here. Messages sent before the program starts are
// queued and flushed on Attach.
type Dispatcher struct {
	mu    sync.Mutex
	send  func(tea.Msg)
	queue []tea.Msg
}

// NewDispatcher returns an unattached dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach connects the dispatcher to a running program and flushes queued
// messages.
func (d *Dispatcher) Attach(p *tea.Program) {
	d.mu.Lock()
	d.send = p.Send
	pending := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, msg := range pending {
		p.Send(msg)
	}
}

// Dispatch sends or queues one message.
func (d *Dispatcher) Dispatch(msg tea.Msg) {
	d.mu.Lock()
	send := d.send
	if send == nil {
		d.queue = append(d.queue, msg)
	}
	d.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// GoTo implements auth.Navigator.
func (d *Dispatcher) GoTo(route string) {
	d.Dispatch(NavigateMsg{Route: route})
}

// GoToLater implements auth.Navigator.
func (d *Dispatcher) GoToLater(route string, delay time.Duration) {
	time.AfterFunc(delay, func() { d.GoTo(route) })
}

// =============================================================================
// APP MODEL
// =============================================================================

// Page routes beyond the two the session manager knows.
const (
	routeEmployees   = "employees"
	routeSubmissions = "submissions"
)

// App is the root model. It owns the page router, forwards input activity
// to the session manager and renders the toast stack over everything.
type App struct {
	cfg    *config.Config
	mgr    *auth.Manager
	api    *api.Client
	dt     *datetime.Formatter
	toasts *components.ToastManager

	route       string
	login       *loginPage
	dashboard   *dashboardPage
	employees   *employeesPage
	submissions *submissionsPage

	statusBar components.StatusBar
	toastView []components.Toast

	width  int
	height int
}

// NewApp wires the root model. toasts must be the same manager the
// session manager notifies into.
func NewApp(cfg *config.Config, mgr *auth.Manager, apiClient *api.Client, dt *datetime.Formatter, toasts *components.ToastManager) *App {
	a := &App{
		cfg:    cfg,
		mgr:    mgr,
		api:    apiClient,
		dt:     dt,
		toasts: toasts,
	}
	a.login = newLoginPage(a)
	a.dashboard = newDashboardPage(a)
	a.employees = newEmployeesPage(a)
	a.submissions = newSubmissionsPage(a)
	return a
}

// Init resumes a persisted session or lands on the login page.
func (a *App) Init() tea.Cmd {
	if a.mgr.Resume() {
		a.route = auth.RouteDashboard
	} else {
		a.route = auth.RouteLogin
	}
	return tea.Batch(components.ToastTickCmd(), a.enterCurrent())
}

// enterCurrent runs the entry hook of the active page.
func (a *App) enterCurrent() tea.Cmd {
	switch a.route {
	case auth.RouteDashboard:
		return a.dashboard.enter()
	case routeEmployees:
		return a.employees.enter()
	case routeSubmissions:
		return a.submissions.enter()
	default:
		return a.login.enter()
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.statusBar.Width = msg.Width
		a.employees.resize(msg.Width, msg.Height)
		a.submissions.resize(msg.Width, msg.Height)
		return a, nil

	case components.ToastTickMsg:
		a.toastView = a.toasts.Tick()
		return a, components.ToastTickCmd()

	case NavigateMsg:
		if msg.Route == a.route {
			return a, nil
		}
		a.route = msg.Route
		return a, a.enterCurrent()

	case tea.KeyMsg:
		// Every keystroke counts as operator activity.
		a.mgr.RecordActivity()
		if msg.String() == "ctrl+c" {
			a.mgr.StopTokenCheck()
			return a, tea.Quit
		}

	case tea.MouseMsg:
		a.mgr.RecordActivity()
	}

	return a, a.updateCurrent(msg)
}

func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	switch a.route {
	case auth.RouteDashboard:
		return a.dashboard.update(msg)
	case routeEmployees:
		return a.employees.update(msg)
	case routeSubmissions:
		return a.submissions.update(msg)
	default:
		return a.login.update(msg)
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return "Chargement..."
	}

	contentHeight := a.height - 1
	var content string
	switch a.route {
	case auth.RouteDashboard:
		content = a.dashboard.view(a.width, contentHeight)
	case routeEmployees:
		content = a.employees.view(a.width, contentHeight)
	case routeSubmissions:
		content = a.submissions.view(a.width, contentHeight)
	default:
		content = a.login.view(a.width, contentHeight)
	}

	// The toast stack claims the bottom of the content area; the page
	// shrinks to make room instead of being painted over.
	overlay := ""
	if len(a.toastView) > 0 {
		overlay = components.RenderToastStack(a.toastView, a.width, 0)
		contentHeight -= lipgloss.Height(overlay)
		if contentHeight < 1 {
			contentHeight = 1
		}
	}
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)
	bar := a.statusBar.Render(a.mgr.User(), a.mgr.InactivityTime(), a.currentHints())

	if overlay != "" {
		return lipgloss.JoinVertical(lipgloss.Left, content, overlay, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, bar)
}

func (a *App) currentHints() string {
	switch a.route {
	case auth.RouteDashboard:
		return a.dashboard.hints()
	case routeEmployees:
		return a.employees.hints()
	case routeSubmissions:
		return a.submissions.hints()
	default:
		return "entrée valider · tab champ suivant · ctrl+c quitter"
	}
}

// notifyErr surfaces an API failure as a toast. Session errors stay
// silent: the manager has already notified and navigated.
func (a *App) notifyErr(err error) {
	if err == nil || errors.Is(err, auth.ErrSessionExpired) || errors.Is(err, auth.ErrNotAuthenticated) {
		return
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		a.toasts.Notify(auth.KindError, "Erreur", apiErr.Error())
		return
	}
	a.toasts.Notify(auth.KindError, "Erreur réseau", "Impossible de joindre le serveur.")
}
