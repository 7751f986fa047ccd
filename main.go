// Eagle Security staff portal - terminal interface for the worker API.
//
// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eaglesec/portal-tui/internal/api"
	"github.com/eaglesec/portal-tui/internal/auth"
	"github.com/eaglesec/portal-tui/internal/cli"
	"github.com/eaglesec/portal-tui/internal/config"
	"github.com/eaglesec/portal-tui/internal/datetime"
	"github.com/eaglesec/portal-tui/internal/store"
	"github.com/eaglesec/portal-tui/internal/ui"
	"github.com/eaglesec/portal-tui/internal/ui/components"
	"github.com/eaglesec/portal-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdLogin:
		err = cli.HandleLogin(args)
	case cli.CmdLogout:
		err = cli.HandleLogout(args)
	case cli.CmdWhoami:
		err = cli.HandleWhoami(args)
	case cli.CmdExport:
		err = cli.HandleExport(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Erreur : %v\n", err)
		os.Exit(1)
	}
}

func runTUI(args cli.Args) error {
	path := args.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	styles.Init(cfg.UI.Theme)

	db, err := store.OpenBolt(cfg.StorePath())
	if err != nil {
		return fmt.Errorf("ouverture de la session locale : %w", err)
	}
	defer db.Close()

	logger := log.New(io.Discard, "", 0)
	if args.Verbose {
		f, err := os.OpenFile(cfg.StorePath()+".log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			defer f.Close()
			logger = log.New(f, "", log.LstdFlags)
		}
	}

	toasts := components.NewToastManager()
	dispatcher := ui.NewDispatcher()

	httpClient := &http.Client{Timeout: cfg.API.Timeout()}
	mgr := auth.New(db, httpClient, toasts, dispatcher, cfg.API.BaseURL).
		WithLogger(logger)
	defer mgr.StopTokenCheck()

	apiClient := api.New(cfg.API.BaseURL, mgr, httpClient).
		WithRateLimit(cfg.API.RequestsPerSecond).
		WithLogger(logger)

	dt := datetime.New(cfg.Location())

	app := ui.NewApp(cfg, mgr, apiClient, dt, toasts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	dispatcher.Attach(p)

	_, err = p.Run()
	return err
}
