// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/api"
	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

// loginPage is the email/password form.
type loginPage struct {
	app *App

	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	spin     spinner.Model
}

func newLoginPage(a *App) *loginPage {
	email := textinput.New()
	email.Placeholder = "prenom.nom@eagle-security.be"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "mot de passe"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120
	password.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.Gold)

	return &loginPage{app: a, email: email, password: password, spin: spin}
}

// enter runs when the page becomes visible. An operator with a live
// session is sent straight to the dashboard.
func (p *loginPage) enter() tea.Cmd {
	p.busy = false
	p.password.SetValue("")
	p.focus = 0
	p.email.Focus()
	p.password.Blur()
	p.app.mgr.RedirectIfAuthenticated()
	return textinput.Blink
}

func (p *loginPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		p.busy = false
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			p.password.SetValue("")
			return nil
		}
		if err := p.app.mgr.SetAuth(msg.resp.Token, msg.resp.User); err != nil {
			p.app.notifyErr(err)
			return nil
		}
		p.app.toasts.Notify(auth.KindSuccess, "Connexion réussie", "Bienvenue, "+msg.resp.User.Name+".")
		return func() tea.Msg { return NavigateMsg{Route: auth.RouteDashboard} }

	case spinner.TickMsg:
		if !p.busy {
			return nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		if p.busy {
			return nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			p.focus = 1 - p.focus
			if p.focus == 0 {
				p.email.Focus()
				p.password.Blur()
			} else {
				p.password.Focus()
				p.email.Blur()
			}
			return textinput.Blink
		case "enter":
			return p.submit()
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return cmd
}

func (p *loginPage) submit() tea.Cmd {
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()
	if email == "" || password == "" {
		p.app.toasts.Notify(auth.KindWarning, "Champs requis", "Email et mot de passe sont obligatoires.")
		return nil
	}

	p.busy = true
	login := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), p.app.cfg.API.Timeout())
		defer cancel()
		resp, err := p.app.api.Login(ctx, email, password)
		return loginResultMsg{resp: resp, err: err}
	}
	return tea.Batch(p.spin.Tick, login)
}

func (p *loginPage) view(width, height int) string {
	title := styles.Title.Render("EAGLE SECURITY")
	subtitle := styles.Subtitle.Render("Portail du personnel")

	emailField := styles.Label.Render("Email") + "\n" + p.email.View()
	passwordField := styles.Label.Render("Mot de passe") + "\n" + p.password.View()

	action := styles.Hint.Render("entrée pour se connecter")
	if p.busy {
		action = p.spin.View() + " Connexion en cours..."
	}

	form := styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, subtitle, "", emailField, "", passwordField, "", action))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
