// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// submissions.go - Triage page for public contact submissions: list with
// status and type filters, detail with the decoded form, handling actions,
// CV extraction and CSV export.

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/export"
	"github.com/eaglesec/portal-tui/internal/model"
	"github.com/eaglesec/portal-tui/internal/ui/components"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
	"github.com/eaglesec/portal-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

type inboxLoadedMsg struct {
	submissions []model.Submission
	err         error
}

type inboxDetailMsg struct {
	sub *model.Submission
	err error
}

type inboxActionMsg struct {
	done string
	err  error

	// closeDetail pops back to the list; set when the detailed
	// submission no longer exists.
	closeDetail bool
}

type inboxExportedMsg struct {
	path string
	err  error
}

// =============================================================================
// PAGE
// =============================================================================

// statusFilters cycles "" (all) then the three stored statuses.
var statusFilters = []string{"", model.SubmissionPending, model.SubmissionProcessed, model.SubmissionArchived}

// typeFilters cycles "" (all) then the three public form types.
var typeFilters = []string{"", model.FormRecruitment, model.FormComplaint, model.FormAppointment}

type submissionsPage struct {
	app *App

	all      []model.Submission
	filtered []model.Submission
	tbl      table.Model
	statusIx int
	typeIx   int

	detail  *model.Submission
	note    textinput.Model
	confirm components.Confirm

	width  int
	height int
}

func newSubmissionsPage(a *App) *submissionsPage {
	note := textinput.New()
	note.Placeholder = "note de traitement"
	note.CharLimit = 500
	note.Width = 50

	tbl := table.New(
		table.WithColumns(submissionColumns(80)),
		table.WithFocused(true),
	)
	tblStyles := table.DefaultStyles()
	tblStyles.Header = tblStyles.Header.Foreground(styles.Slate).Bold(true).BorderBottom(true)
	tblStyles.Selected = styles.Selected
	tbl.SetStyles(tblStyles)

	return &submissionsPage{app: a, tbl: tbl, note: note}
}

func submissionColumns(width int) []table.Column {
	nameW := width - 6 - 13 - 10 - 16 - 8
	if nameW < 14 {
		nameW = 14
	}
	return []table.Column{
		{Title: "N°", Width: 6},
		{Title: "Type", Width: 13},
		{Title: "Statut", Width: 10},
		{Title: "Nom", Width: nameW},
		{Title: "Reçu", Width: 16},
	}
}

func (p *submissionsPage) resize(width, height int) {
	p.width = width
	p.height = height
	p.tbl.SetColumns(submissionColumns(width - 4))
	rows := height - 8
	if rows < 3 {
		rows = 3
	}
	if ps := p.app.cfg.UI.PageSize; ps > 0 && rows > ps {
		rows = ps
	}
	p.tbl.SetHeight(rows)
}

func (p *submissionsPage) enter() tea.Cmd {
	if !p.app.mgr.RequireAuth() {
		return nil
	}
	p.detail = nil
	p.statusIx = 0
	p.typeIx = 0
	return p.loadInbox()
}

// =============================================================================
// COMMANDS
// =============================================================================

func (p *submissionsPage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), p.app.cfg.API.Timeout())
}

func (p *submissionsPage) loadInbox() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		subs, err := p.app.api.Submissions(ctx)
		return inboxLoadedMsg{submissions: subs, err: err}
	}
}

func (p *submissionsPage) loadDetail(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		sub, err := p.app.api.Submission(ctx, id)
		return inboxDetailMsg{sub: sub, err: err}
	}
}

func (p *submissionsPage) action(done string, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := call(ctx); err != nil {
			return inboxActionMsg{err: err}
		}
		return inboxActionMsg{done: done}
	}
}

func (p *submissionsPage) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.DeleteSubmission(ctx, id); err != nil {
			return inboxActionMsg{err: err}
		}
		return inboxActionMsg{done: "Soumission supprimée.", closeDetail: true}
	}
}

func (p *submissionsPage) exportCmd() tea.Cmd {
	subs := append([]model.Submission(nil), p.filtered...)
	opts := &export.Options{OutputDir: p.app.cfg.DataDir}
	return func() tea.Msg {
		path, err := opts.WriteSubmissionsCSV(subs, p.app.dt, time.Now())
		return inboxExportedMsg{path: path, err: err}
	}
}

func (p *submissionsPage) saveCVCmd(sub model.Submission) tea.Cmd {
	opts := &export.Options{OutputDir: p.app.cfg.DataDir}
	return func() tea.Msg {
		path, err := opts.WriteCV(&sub)
		if err != nil {
			return inboxActionMsg{err: err}
		}
		return inboxActionMsg{done: "CV enregistré : " + path}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

func (p *submissionsPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case inboxLoadedMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.all = msg.submissions
		p.applyFilter()
		return nil

	case inboxDetailMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.detail = msg.sub
		return nil

	case inboxActionMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.app.toasts.Notify(auth.KindSuccess, "Fait", msg.done)
		if msg.closeDetail {
			p.detail = nil
		}
		if p.detail != nil {
			return tea.Batch(p.loadInbox(), p.loadDetail(p.detail.ID))
		}
		return p.loadInbox()

	case inboxExportedMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.app.toasts.Notify(auth.KindSuccess, "Export terminé", msg.path)
		return nil

	case tea.KeyMsg:
		if p.confirm.Active {
			return p.confirm.Update(msg)
		}
		if p.detail != nil {
			return p.updateDetail(msg)
		}
		return p.updateList(msg)
	}
	return nil
}

func (p *submissionsPage) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		return func() tea.Msg { return NavigateMsg{Route: auth.RouteDashboard} }
	case "s":
		p.statusIx = (p.statusIx + 1) % len(statusFilters)
		p.applyFilter()
		return nil
	case "t":
		p.typeIx = (p.typeIx + 1) % len(typeFilters)
		p.applyFilter()
		return nil
	case "r":
		return p.loadInbox()
	case "e":
		return p.exportCmd()
	case "enter":
		if s, ok := p.selected(); ok {
			return p.loadDetail(s.ID)
		}
		return nil
	}

	var cmd tea.Cmd
	p.tbl, cmd = p.tbl.Update(msg)
	return cmd
}

func (p *submissionsPage) updateDetail(msg tea.KeyMsg) tea.Cmd {
	sub := *p.detail

	if p.note.Focused() {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(p.note.Value())
			p.note.SetValue("")
			p.note.Blur()
			if text == "" {
				return nil
			}
			return p.action("Note enregistrée.", func(ctx context.Context) error {
				return p.app.api.AddSubmissionNote(ctx, sub.ID, text)
			})
		case "esc":
			p.note.SetValue("")
			p.note.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.note, cmd = p.note.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "esc", "q":
		p.detail = nil
		return nil
	case "p":
		return p.action("Prise en charge enregistrée.", func(ctx context.Context) error {
			return p.app.api.TakeCharge(ctx, sub.ID)
		})
	case "a":
		return p.action("Candidature archivée.", func(ctx context.Context) error {
			return p.app.api.Archive(ctx, sub.ID)
		})
	case "x":
		p.confirm.Ask(
			fmt.Sprintf("Supprimer la soumission #%d ?", sub.ID),
			"Cette suppression est définitive.",
			p.deleteCmd(sub.ID),
		)
		return nil
	case "m":
		p.note.Focus()
		return textinput.Blink
	case "c":
		if sub.FormType == model.FormRecruitment {
			return p.saveCVCmd(sub)
		}
		return nil
	}
	return nil
}

// =============================================================================
// FILTER AND TABLE
// =============================================================================

func (p *submissionsPage) applyFilter() {
	status := statusFilters[p.statusIx]
	formType := typeFilters[p.typeIx]

	p.filtered = p.filtered[:0]
	for _, s := range p.all {
		if status != "" && s.Status != status {
			continue
		}
		if formType != "" && s.FormType != formType {
			continue
		}
		p.filtered = append(p.filtered, s)
	}

	rows := make([]table.Row, len(p.filtered))
	for i, s := range p.filtered {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", s.ID),
			model.FormTypeLabel(s.FormType),
			s.StatusDisplay(),
			s.Nom,
			p.app.dt.Relative(s.SubmittedAt),
		}
	}
	p.tbl.SetRows(rows)
}

func (p *submissionsPage) selected() (model.Submission, bool) {
	idx := p.tbl.Cursor()
	if idx < 0 || idx >= len(p.filtered) {
		return model.Submission{}, false
	}
	return p.filtered[idx], true
}

// =============================================================================
// VIEW
// =============================================================================

func (p *submissionsPage) view(width, height int) string {
	if p.confirm.Active {
		return p.confirm.Render(width, height)
	}
	if p.detail != nil {
		return p.viewDetail(width, height)
	}
	return p.viewList(width, height)
}

func filterLabel(active, label string) string {
	if active == "" {
		return styles.Hint.Render(label + ": tous")
	}
	return styles.Selected.Render(label + ": " + active)
}

func (p *submissionsPage) viewList(width, height int) string {
	title := styles.Title.Render("Candidatures & plaintes")
	count := styles.Subtitle.Render(fmt.Sprintf("%d / %d", len(p.filtered), len(p.all)))

	filters := lipgloss.JoinHorizontal(lipgloss.Center,
		filterLabel(model.StatusLabel(statusFilters[p.statusIx]), "statut"),
		"  ",
		filterLabel(model.FormTypeLabel(typeFilters[p.typeIx]), "type"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, count),
		filters,
		p.tbl.View(),
	)
}

func (p *submissionsPage) viewDetail(width, height int) string {
	s := p.detail
	field := func(label, value string) string {
		return styles.Label.Render(label+": ") + styles.Value.Render(value)
	}

	head := []string{
		styles.Title.Render(model.FormTypeLabel(s.FormType)) + styles.Subtitle.Render(fmt.Sprintf("#%d", s.ID)),
		field("Statut", s.StatusDisplay()),
		field("Nom", s.Nom),
		field("Email", s.Email),
		field("Téléphone", orPlaceholder(s.Telephone)),
		field("Reçu le", p.app.dt.Format(s.SubmittedAt)),
	}
	if s.HandlerName != "" {
		head = append(head, field("Pris en charge par", s.HandlerName))
	}
	if s.Notes != "" {
		head = append(head, field("Notes", s.Notes))
	}

	body := p.viewFormData(s, width)

	parts := []string{
		styles.Box.Render(strings.Join(head, "\n")),
		"",
		body,
	}
	if p.note.Focused() {
		parts = append(parts, "", p.note.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewFormData renders the decoded form_data for the submission's type.
// A decode failure is shown inline rather than toasted; the document came
// from the public site and may be malformed.
func (p *submissionsPage) viewFormData(s *model.Submission, width int) string {
	field := func(label, value string) string {
		return styles.Label.Render(label+": ") + styles.Value.Render(util.TruncateWidth(value, width-len(label)-4))
	}

	switch s.FormType {
	case model.FormRecruitment:
		d, err := s.Recruitment()
		if err != nil {
			return styles.Danger.Render("Formulaire illisible : " + err.Error())
		}
		lines := []string{
			field("Expérience", d.Experience),
			field("Certifications", orPlaceholder(d.Certifications)),
			field("Motivation", d.Motivation),
		}
		if d.CVFilename != "" {
			lines = append(lines, field("CV", d.CVFilename+"  (c pour enregistrer)"))
		}
		return strings.Join(lines, "\n")

	case model.FormComplaint:
		d, err := s.Complaint()
		if err != nil {
			return styles.Danger.Render("Formulaire illisible : " + err.Error())
		}
		return strings.Join([]string{
			field("Client", d.Client),
			field("Référence", orPlaceholder(d.Reference)),
			field("Date de l'incident", p.app.dt.FormatDate(d.DateIncident)),
			field("Type", d.Type),
			field("Description", d.Description),
		}, "\n")

	case model.FormAppointment:
		d, err := s.Appointment()
		if err != nil {
			return styles.Danger.Render("Formulaire illisible : " + err.Error())
		}
		return strings.Join([]string{
			field("Entreprise", orPlaceholder(d.Entreprise)),
			field("Type", d.Type),
			field("Date souhaitée", p.app.dt.FormatDate(d.Date)),
			field("Heure", d.Heure),
			field("Lieu", orPlaceholder(d.Lieu)),
			field("Objet", orPlaceholder(d.Objet)),
		}, "\n")
	}
	return styles.Hint.Render("Type de formulaire inconnu.")
}

func (p *submissionsPage) hints() string {
	if p.detail != nil {
		h := "p prendre en charge · a archiver · x supprimer · m note"
		if p.detail.FormType == model.FormRecruitment {
			h += " · c enregistrer CV"
		}
		return h + " · esc retour"
	}
	return "s statut · t type · e exporter · r recharger · esc retour"
}
