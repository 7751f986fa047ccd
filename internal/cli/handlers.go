// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers.go - Headless command handlers. They share the session store
// with the TUI, so a `login` here carries over to the interface and
// vice versa.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/eaglesec/portal-tui/internal/api"
	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/config"
	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/export"
	"github.com/eaglesec/portal-tui/internal/store"
)

// printNotifier renders session notifications on stderr. The CLI has no
// toast stack; losing a session mid-command still has to be visible.
type printNotifier struct{}

func (printNotifier) Notify(kind auth.Kind, title, message string) {
	prefix := map[auth.Kind]string{
		auth.KindInfo:    "i",
		auth.KindSuccess: "✓",
		auth.KindWarning: "!",
		auth.KindError:   "✗",
	}[kind]
	fmt.Fprintf(os.Stderr, "%s %s : %s\n", prefix, title, message)
}

// nopNavigator satisfies the manager; headless commands have no pages.
type nopNavigator struct{}

func (nopNavigator) GoTo(string)                     {}
func (nopNavigator) GoToLater(string, time.Duration) {}

// session bundles everything a headless command needs.
type session struct {
	cfg    *config.Config
	db     *store.Bolt
	mgr    *auth.Manager
	client *api.Client
}

func (s *session) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func openSession(args Args) (*session, error) {
	path := args.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	db, err := store.OpenBolt(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("ouverture de la session locale : %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout()}
	mgr := auth.New(db, httpClient, printNotifier{}, nopNavigator{}, cfg.API.BaseURL)
	if !args.Verbose {
		mgr.WithLogger(log.New(io.Discard, "", 0))
	}

	client := api.New(cfg.API.BaseURL, mgr, httpClient).
		WithRateLimit(cfg.API.RequestsPerSecond)
	if !args.Verbose {
		client.WithLogger(log.New(io.Discard, "", 0))
	}

	return &session{cfg: cfg, db: db, mgr: mgr, client: client}, nil
}

func (s *session) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.cfg.API.Timeout())
}

// =============================================================================
// COMMANDS
// =============================================================================

// HandleLogin authenticates against the API and persists the session.
func HandleLogin(args Args) error {
	s, err := openSession(args)
	if err != nil {
		return err
	}
	defer s.Close()

	email := strings.TrimSpace(args.Email)
	if email == "" {
		fmt.Print("Email : ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return errors.New("email requis")
	}

	fmt.Print("Mot de passe : ")
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("lecture du mot de passe : %w", err)
	}

	ctx, cancel := s.ctx()
	defer cancel()
	resp, err := s.client.Login(ctx, email, string(passBytes))
	if err != nil {
		return err
	}
	if err := s.mgr.SetAuth(resp.Token, resp.User); err != nil {
		return err
	}
	s.mgr.StopTokenCheck() // no background loop for one-shot commands

	fmt.Printf("Connecté en tant que %s (badge #%s).\n", resp.User.Name, resp.User.Badge())
	return nil
}

// HandleLogout drops the locally stored session. The worker keeps no
// server-side state for it.
func HandleLogout(args Args) error {
	s, err := openSession(args)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.mgr.IsAuthenticated() {
		fmt.Println("Aucune session active.")
		return nil
	}
	s.mgr.Logout(false)
	fmt.Println("Session fermée.")
	return nil
}

// HandleWhoami prints the stored user, if any.
func HandleWhoami(args Args) error {
	s, err := openSession(args)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.mgr.IsAuthenticated() {
		return errors.New("aucune session active ; lancez `eagle-portal login`")
	}
	user := s.mgr.User()
	if user == nil {
		return errors.New("session illisible ; reconnectez-vous")
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}

	fmt.Printf("%s\n", user.Name)
	fmt.Printf("  Badge   : #%s\n", user.Badge())
	fmt.Printf("  Email   : %s\n", user.Email)
	fmt.Printf("  Grade   : %s\n", user.RankName)
	if s.mgr.Expired() {
		fmt.Println("  Session : expirée")
	} else {
		fmt.Printf("  Session : inactive depuis %s\n", s.mgr.InactivityTime().Round(time.Second))
	}
	return nil
}

// HandleExport fetches and writes an export file, then prints its path.
func HandleExport(args Args) error {
	s, err := openSession(args)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.mgr.IsAuthenticated() || s.mgr.Expired() {
		return errors.New("session absente ou expirée ; lancez `eagle-portal login`")
	}

	opts := &export.Options{OutputDir: args.Output}
	if opts.OutputDir == "" {
		opts.OutputDir = s.cfg.DataDir
	}
	dt := datetime.New(s.cfg.Location())

	ctx, cancel := s.ctx()
	defer cancel()

	var path string
	switch args.Subcommand {
	case "employees", "employes", "employés":
		employees, err := s.client.Employees(ctx)
		if err != nil {
			return err
		}
		path, err = opts.WriteEmployeesTXT(employees, dt, time.Now())
		if err != nil {
			return err
		}

	case "submissions", "soumissions":
		subs, err := s.client.Submissions(ctx)
		if err != nil {
			return err
		}
		path, err = opts.WriteSubmissionsCSV(subs, dt, time.Now())
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("export inconnu : %q (employees ou submissions)", args.Subcommand)
	}

	fmt.Println(path)
	return nil
}
