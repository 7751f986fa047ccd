// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// employees.go - Roster page: list, detail with notes and sanctions,
// account creation and deletion, text export.

package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/export"
	"github.com/eaglesec/portal-tui/internal/model"
	"github.com/eaglesec/portal-tui/internal/ui/components"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
	"github.com/eaglesec/portal-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

type rosterLoadedMsg struct {
	employees []model.Employee
	ranks     []model.Rank
	err       error
}

type employeeFileMsg struct {
	employee  *model.Employee
	notes     []model.EmployeeNote
	sanctions []model.Sanction
	err       error
}

// rosterActionMsg reports a mutation (create, delete, note, sanction);
// the page reloads on success.
type rosterActionMsg struct {
	done string
	err  error
}

type rosterExportedMsg struct {
	path string
	err  error
}

// =============================================================================
// PAGE
// =============================================================================

type employeeMode int

const (
	employeeModeList employeeMode = iota
	employeeModeDetail
	employeeModeCreate
)

type employeesPage struct {
	app *App

	mode employeeMode

	// List state.
	all      []model.Employee
	ranks    []model.Rank
	filtered []model.Employee
	tbl      table.Model
	filter   textinput.Model
	filterOn bool
	confirm  components.Confirm

	// Detail state. fileCursor selects among the notes then the
	// sanctions, for deletion.
	file         employeeFileMsg
	note         textinput.Model
	sanction     textinput.Model
	sanctionType int
	fileCursor   int

	// Create form state.
	form      []textinput.Model
	formFocus int
	formRank  int

	width  int
	height int
}

var createFieldLabels = []string{"Badge", "Nom", "Email", "Mot de passe", "Téléphone"}

func newEmployeesPage(a *App) *employeesPage {
	filter := textinput.New()
	filter.Placeholder = "filtrer par nom, email ou grade"
	filter.Width = 40

	note := textinput.New()
	note.Placeholder = "nouvelle note"
	note.CharLimit = 500
	note.Width = 50

	sanction := textinput.New()
	sanction.Placeholder = "motif de la sanction"
	sanction.CharLimit = 500
	sanction.Width = 50

	form := make([]textinput.Model, len(createFieldLabels))
	for i, label := range createFieldLabels {
		in := textinput.New()
		in.Placeholder = label
		in.Width = 36
		if label == "Mot de passe" {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		form[i] = in
	}

	tbl := table.New(
		table.WithColumns(employeeColumns(80)),
		table.WithFocused(true),
	)
	tblStyles := table.DefaultStyles()
	tblStyles.Header = tblStyles.Header.Foreground(styles.Slate).Bold(true).BorderBottom(true)
	tblStyles.Selected = styles.Selected
	tbl.SetStyles(tblStyles)

	return &employeesPage{app: a, tbl: tbl, filter: filter, note: note, sanction: sanction, form: form}
}

func employeeColumns(width int) []table.Column {
	nameW := width - 8 - 14 - 10 - 14 - 8
	if nameW < 16 {
		nameW = 16
	}
	return []table.Column{
		{Title: "Badge", Width: 8},
		{Title: "Nom", Width: nameW},
		{Title: "Grade", Width: 14},
		{Title: "Statut", Width: 10},
		{Title: "Dernier login", Width: 14},
	}
}

func (p *employeesPage) resize(width, height int) {
	p.width = width
	p.height = height
	p.tbl.SetColumns(employeeColumns(width - 4))
	rows := height - 8
	if rows < 3 {
		rows = 3
	}
	if ps := p.app.cfg.UI.PageSize; ps > 0 && rows > ps {
		rows = ps
	}
	p.tbl.SetHeight(rows)
}

func (p *employeesPage) enter() tea.Cmd {
	if !p.app.mgr.RequireAuth() {
		return nil
	}
	p.mode = employeeModeList
	p.filterOn = false
	p.filter.SetValue("")
	return p.loadRoster()
}

// =============================================================================
// COMMANDS
// =============================================================================

func (p *employeesPage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), p.app.cfg.API.Timeout())
}

func (p *employeesPage) loadRoster() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		employees, err := p.app.api.Employees(ctx)
		if err != nil {
			return rosterLoadedMsg{err: err}
		}
		ranks, err := p.app.api.Ranks(ctx)
		if err != nil {
			return rosterLoadedMsg{err: err}
		}
		util.SortFrench(employees, func(e model.Employee) string { return e.Name })
		return rosterLoadedMsg{employees: employees, ranks: ranks}
	}
}

func (p *employeesPage) loadFile(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		emp, err := p.app.api.Employee(ctx, id)
		if err != nil {
			return employeeFileMsg{err: err}
		}
		notes, err := p.app.api.Notes(ctx, id)
		if err != nil {
			return employeeFileMsg{err: err}
		}
		sanctions, err := p.app.api.Sanctions(ctx, id)
		if err != nil {
			return employeeFileMsg{err: err}
		}
		return employeeFileMsg{employee: emp, notes: notes, sanctions: sanctions}
	}
}

func (p *employeesPage) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.DeleteEmployee(ctx, id); err != nil {
			return rosterActionMsg{err: err}
		}
		return rosterActionMsg{done: "Employé supprimé, notes et sanctions comprises."}
	}
}

func (p *employeesPage) addNoteCmd(id int, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.AddNote(ctx, id, text); err != nil {
			return rosterActionMsg{err: err}
		}
		return rosterActionMsg{done: "Note ajoutée."}
	}
}

func (p *employeesPage) deleteNoteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.DeleteNote(ctx, id); err != nil {
			return rosterActionMsg{err: err}
		}
		return rosterActionMsg{done: "Note supprimée."}
	}
}

func (p *employeesPage) addSanctionCmd(id int, sanctionType, reason string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.AddSanction(ctx, id, sanctionType, reason); err != nil {
			return rosterActionMsg{err: err}
		}
		return rosterActionMsg{done: "Sanction enregistrée."}
	}
}

func (p *employeesPage) deleteSanctionCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.DeleteSanction(ctx, id); err != nil {
			return rosterActionMsg{err: err}
		}
		return rosterActionMsg{done: "Sanction supprimée."}
	}
}

func (p *employeesPage) createCmd(e model.NewEmployee) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.ctx()
		defer cancel()
		if err := p.app.api.CreateEmployee(ctx, e); err != nil {
			return rosterActionMsg{err: err}
		}
		return rosterActionMsg{done: "Compte créé."}
	}
}

func (p *employeesPage) exportCmd() tea.Cmd {
	employees := append([]model.Employee(nil), p.filtered...)
	opts := &export.Options{OutputDir: p.app.cfg.DataDir}
	return func() tea.Msg {
		path, err := opts.WriteEmployeesTXT(employees, p.app.dt, time.Now())
		return rosterExportedMsg{path: path, err: err}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

func (p *employeesPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.all = msg.employees
		p.ranks = msg.ranks
		p.applyFilter()
		return nil

	case employeeFileMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			p.mode = employeeModeList
			return nil
		}
		p.file = msg
		p.mode = employeeModeDetail
		p.fileCursor = 0
		return nil

	case rosterActionMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.app.toasts.Notify(auth.KindSuccess, "Fait", msg.done)
		if p.mode == employeeModeDetail && p.file.employee != nil {
			return tea.Batch(p.loadRoster(), p.loadFile(p.file.employee.ID))
		}
		p.mode = employeeModeList
		return p.loadRoster()

	case rosterExportedMsg:
		if msg.err != nil {
			p.app.notifyErr(msg.err)
			return nil
		}
		p.app.toasts.Notify(auth.KindSuccess, "Export terminé", msg.path)
		return nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *employeesPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.confirm.Active {
		return p.confirm.Update(msg)
	}

	switch p.mode {
	case employeeModeCreate:
		return p.updateCreate(msg)
	case employeeModeDetail:
		return p.updateDetail(msg)
	default:
		return p.updateList(msg)
	}
}

func (p *employeesPage) updateList(msg tea.KeyMsg) tea.Cmd {
	if p.filterOn {
		switch msg.String() {
		case "enter", "esc":
			p.filterOn = false
			p.filter.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		p.applyFilter()
		return cmd
	}

	switch msg.String() {
	case "esc", "q":
		return func() tea.Msg { return NavigateMsg{Route: auth.RouteDashboard} }
	case "/":
		p.filterOn = true
		p.filter.Focus()
		return textinput.Blink
	case "r":
		return p.loadRoster()
	case "e":
		return p.exportCmd()
	case "n":
		return p.openCreate()
	case "d":
		if e, ok := p.selected(); ok {
			p.confirm.Ask(
				"Supprimer "+e.Name+" ?",
				"Le compte #"+e.Badge()+" sera supprimé définitivement, ainsi que toutes ses notes et sanctions.",
				p.deleteCmd(e.ID),
			)
		}
		return nil
	case "enter":
		if e, ok := p.selected(); ok {
			return p.loadFile(e.ID)
		}
		return nil
	}

	var cmd tea.Cmd
	p.tbl, cmd = p.tbl.Update(msg)
	return cmd
}

func (p *employeesPage) updateDetail(msg tea.KeyMsg) tea.Cmd {
	if p.note.Focused() {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(p.note.Value())
			p.note.SetValue("")
			p.note.Blur()
			if text != "" && p.file.employee != nil {
				return p.addNoteCmd(p.file.employee.ID, text)
			}
			return nil
		case "esc":
			p.note.SetValue("")
			p.note.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.note, cmd = p.note.Update(msg)
		return cmd
	}

	if p.sanction.Focused() {
		switch msg.String() {
		case "tab":
			p.sanctionType = (p.sanctionType + 1) % len(model.SanctionTypes)
			return nil
		case "enter":
			reason := strings.TrimSpace(p.sanction.Value())
			p.sanction.SetValue("")
			p.sanction.Blur()
			if reason != "" && p.file.employee != nil {
				return p.addSanctionCmd(p.file.employee.ID, model.SanctionTypes[p.sanctionType], reason)
			}
			return nil
		case "esc":
			p.sanction.SetValue("")
			p.sanction.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.sanction, cmd = p.sanction.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "esc", "q":
		p.mode = employeeModeList
		return nil
	case "m":
		p.note.Focus()
		return textinput.Blink
	case "s":
		p.sanctionType = 0
		p.sanction.Focus()
		return textinput.Blink
	case "up", "k":
		if p.fileCursor > 0 {
			p.fileCursor--
		}
		return nil
	case "down", "j":
		if p.fileCursor < len(p.file.notes)+len(p.file.sanctions)-1 {
			p.fileCursor++
		}
		return nil
	case "x":
		return p.askDeleteEntry()
	}
	return nil
}

// askDeleteEntry arms the confirm dialog for the note or sanction under
// the cursor.
func (p *employeesPage) askDeleteEntry() tea.Cmd {
	if p.fileCursor < len(p.file.notes) {
		n := p.file.notes[p.fileCursor]
		p.confirm.Ask(
			"Supprimer cette note ?",
			util.TruncateWidth(n.Note, 60),
			p.deleteNoteCmd(n.ID),
		)
		return nil
	}
	idx := p.fileCursor - len(p.file.notes)
	if idx < len(p.file.sanctions) {
		s := p.file.sanctions[idx]
		p.confirm.Ask(
			"Supprimer cette sanction ?",
			s.Type+" — "+util.TruncateWidth(s.Reason, 60),
			p.deleteSanctionCmd(s.ID),
		)
	}
	return nil
}

func (p *employeesPage) openCreate() tea.Cmd {
	for i := range p.form {
		p.form[i].SetValue("")
		p.form[i].Blur()
	}
	p.formFocus = 0
	p.formRank = 0
	p.form[0].Focus()
	p.mode = employeeModeCreate
	return textinput.Blink
}

func (p *employeesPage) updateCreate(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.mode = employeeModeList
		return nil
	case "tab", "down":
		return p.focusForm(p.formFocus + 1)
	case "shift+tab", "up":
		return p.focusForm(p.formFocus - 1)
	case "left", "right":
		// The rank selector is the pseudo-field after the inputs.
		if p.formFocus == len(p.form) && len(p.ranks) > 0 {
			if msg.String() == "right" {
				p.formRank = (p.formRank + 1) % len(p.ranks)
			} else {
				p.formRank = (p.formRank + len(p.ranks) - 1) % len(p.ranks)
			}
			return nil
		}
	case "enter":
		if p.formFocus == len(p.form) {
			return p.submitCreate()
		}
		return p.focusForm(p.formFocus + 1)
	}

	if p.formFocus < len(p.form) {
		var cmd tea.Cmd
		p.form[p.formFocus], cmd = p.form[p.formFocus].Update(msg)
		return cmd
	}
	return nil
}

func (p *employeesPage) focusForm(idx int) tea.Cmd {
	if idx < 0 {
		idx = len(p.form)
	}
	if idx > len(p.form) {
		idx = 0
	}
	if p.formFocus < len(p.form) {
		p.form[p.formFocus].Blur()
	}
	p.formFocus = idx
	if idx < len(p.form) {
		p.form[idx].Focus()
		return textinput.Blink
	}
	return nil
}

func (p *employeesPage) submitCreate() tea.Cmd {
	badge, err := strconv.Atoi(strings.TrimSpace(p.form[0].Value()))
	if err != nil || badge <= 0 {
		p.app.toasts.Notify(auth.KindWarning, "Badge invalide", "Le badge est un numéro positif.")
		return p.focusForm(0)
	}
	name := strings.TrimSpace(p.form[1].Value())
	email := strings.TrimSpace(p.form[2].Value())
	password := p.form[3].Value()
	if name == "" || email == "" || password == "" {
		p.app.toasts.Notify(auth.KindWarning, "Champs requis", "Nom, email et mot de passe sont obligatoires.")
		return nil
	}
	if len(p.ranks) == 0 {
		p.app.toasts.Notify(auth.KindError, "Erreur", "Les grades ne sont pas chargés.")
		return nil
	}

	return p.createCmd(model.NewEmployee{
		ID:       badge,
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    strings.TrimSpace(p.form[4].Value()),
		RankID:   p.ranks[p.formRank].ID,
	})
}

// =============================================================================
// FILTER AND TABLE
// =============================================================================

func (p *employeesPage) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(p.filter.Value()))
	p.filtered = p.filtered[:0]
	for _, e := range p.all {
		if needle == "" ||
			strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Email), needle) ||
			strings.Contains(strings.ToLower(e.RankName), needle) {
			p.filtered = append(p.filtered, e)
		}
	}

	rows := make([]table.Row, len(p.filtered))
	for i, e := range p.filtered {
		_, label := loginStatus(p.app.dt, e.LastLogin)
		rows[i] = table.Row{
			"#" + e.Badge(),
			e.Name,
			e.RankName,
			label,
			p.app.dt.Relative(e.LastLogin),
		}
	}
	p.tbl.SetRows(rows)
}

// loginStatus derives a display status from the last login; the API
// stores no status column.
func loginStatus(dt *datetime.Formatter, lastLogin string) (status, label string) {
	switch {
	case lastLogin == "":
		return model.StatusNever, "Jamais"
	case dt.IsToday(lastLogin):
		return model.StatusActive, "Actif"
	case dt.IsThisWeek(lastLogin):
		return model.StatusRecent, "Récent"
	default:
		return model.StatusInactive, "Inactif"
	}
}

func (p *employeesPage) selected() (model.Employee, bool) {
	idx := p.tbl.Cursor()
	if idx < 0 || idx >= len(p.filtered) {
		return model.Employee{}, false
	}
	return p.filtered[idx], true
}

// =============================================================================
// VIEW
// =============================================================================

func (p *employeesPage) view(width, height int) string {
	if p.confirm.Active {
		return p.confirm.Render(width, height)
	}
	switch p.mode {
	case employeeModeCreate:
		return p.viewCreate(width, height)
	case employeeModeDetail:
		return p.viewDetail(width, height)
	default:
		return p.viewList(width, height)
	}
}

func (p *employeesPage) viewList(width, height int) string {
	title := styles.Title.Render("Employés")
	count := styles.Subtitle.Render(fmt.Sprintf("%d / %d", len(p.filtered), len(p.all)))
	head := lipgloss.JoinHorizontal(lipgloss.Center, title, count)

	parts := []string{head}
	if p.filterOn || p.filter.Value() != "" {
		parts = append(parts, p.filter.View())
	}
	parts = append(parts, p.tbl.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p *employeesPage) viewDetail(width, height int) string {
	e := p.file.employee
	if e == nil {
		return ""
	}

	field := func(label, value string) string {
		return styles.Label.Render(label+": ") + styles.Value.Render(value)
	}
	status, statusLabel := loginStatus(p.app.dt, e.LastLogin)
	info := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(e.Name)+styles.Subtitle.Render("#"+e.Badge()),
		field("Grade", e.RankName),
		field("Email", e.Email),
		field("Téléphone", orPlaceholder(e.Phone)),
		field("Statut", styles.StatusStyle(status).Render(statusLabel)),
		field("Arrivée", p.app.dt.FormatDateLong(e.HiredDate)),
		field("Dernier login", p.app.dt.Relative(e.LastLogin)),
	)

	marker := func(idx int) string {
		if idx == p.fileCursor {
			return "▸ "
		}
		return "· "
	}

	var notes []string
	notes = append(notes, styles.Label.Render(fmt.Sprintf("Notes (%d)", len(p.file.notes))))
	for i, n := range p.file.notes {
		line := fmt.Sprintf("%s%s — %s", marker(i), util.TruncateWidth(n.Note, width-30), p.app.dt.FormatDate(n.CreatedAt))
		notes = append(notes, styles.Value.Render(line))
	}
	if p.note.Focused() {
		notes = append(notes, p.note.View())
	}

	var sanctions []string
	sanctions = append(sanctions, styles.Label.Render(fmt.Sprintf("Sanctions (%d)", len(p.file.sanctions))))
	for i, s := range p.file.sanctions {
		line := fmt.Sprintf("%s%s — %s (%s)", marker(len(p.file.notes)+i),
			s.Type, util.TruncateWidth(s.Reason, width-40), p.app.dt.FormatDate(s.IssuedAt))
		if s.IssuerName != "" {
			line += " — émise par " + s.IssuerName
		}
		sanctions = append(sanctions, styles.Danger.Render(line))
	}
	if p.sanction.Focused() {
		sanctions = append(sanctions,
			styles.Selected.Render("Type: "+model.SanctionTypes[p.sanctionType])+styles.Hint.Render("  (tab pour changer)"),
			p.sanction.View(),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Box.Render(info),
		"",
		strings.Join(notes, "\n"),
		"",
		strings.Join(sanctions, "\n"),
	)
	return body
}

func (p *employeesPage) viewCreate(width, height int) string {
	parts := []string{styles.Title.Render("Nouveau compte employé"), ""}
	for i, in := range p.form {
		parts = append(parts, styles.Label.Render(createFieldLabels[i])+"\n"+in.View())
	}

	rank := "aucun grade chargé"
	if len(p.ranks) > 0 {
		rank = p.ranks[p.formRank].Name
	}
	rankLine := styles.Label.Render("Grade") + "\n"
	if p.formFocus == len(p.form) {
		rankLine += styles.Selected.Render("◀ " + rank + " ▶")
	} else {
		rankLine += styles.Value.Render(rank)
	}
	parts = append(parts, rankLine, "", styles.Hint.Render("entrée sur Grade pour créer · esc annuler"))

	form := styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

func (p *employeesPage) hints() string {
	switch p.mode {
	case employeeModeDetail:
		return "m note · s sanction · x supprimer l'entrée · esc retour"
	case employeeModeCreate:
		return "tab champ suivant · esc annuler"
	default:
		return "/ filtrer · n nouveau · d supprimer · e exporter · r recharger · esc retour"
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return "Non renseigné"
	}
	return s
}
