// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for the staff portal.
//
// The binary starts the TUI by default; subcommands cover scripted use
// (login for cron jobs, exports for the back office).
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdLogout
	CmdWhoami
	CmdExport
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Config  string // alternate config file
	Verbose bool
	JSON    bool

	// Command-specific
	Email      string // login
	Subcommand string // export: "employees" or "submissions"
	Output     string // export: target directory

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `eagle-portal - Portail employés Eagle Security (terminal)

Usage:
  eagle-portal                    Ouvrir l'interface (TUI)
  eagle-portal login [email]      Se connecter et mémoriser la session
  eagle-portal logout             Fermer la session locale
  eagle-portal whoami             Afficher l'utilisateur connecté
  eagle-portal export <quoi>      Exporter des données
  eagle-portal version            Afficher la version

Export:
  eagle-portal export employees     Liste des employés (fichier texte)
  eagle-portal export submissions   Candidatures et plaintes (CSV)
    --output DIR                    Répertoire de sortie

Options globales:
  --config FILE    Fichier de configuration alternatif
  --json           Sortie JSON (whoami)
  -v, --verbose    Journalisation détaillée

Variables d'environnement:
  EAGLE_PORTAL_API_URL    URL de l'API
  EAGLE_PORTAL_DATA_DIR   Répertoire de données
  EAGLE_PORTAL_THEME      Thème (dark, light)
`

// PrintUsage writes the command help to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes build information to stdout.
func PrintVersion() {
	fmt.Printf("eagle-portal %s (%s, %s, %s/%s)\n",
		Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH)
}

// Parse reads os.Args and returns the command to run with its arguments.
func Parse() (Command, Args) {
	remaining, parsed := parseGlobalFlags(os.Args[1:])

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "login":
		if len(remaining) > 0 {
			parsed.Email = remaining[0]
		}
		return CmdLogin, parsed

	case "logout":
		return CmdLogout, parsed

	case "whoami", "me":
		return CmdWhoami, parsed

	case "export":
		parseExportArgs(&parsed, remaining)
		return CmdExport, parsed

	case "version", "--version":
		return CmdVersion, parsed

	case "help", "--help", "-h":
		return CmdHelp, parsed

	default:
		fmt.Fprintf(os.Stderr, "commande inconnue : %s\n\n", cmd)
		return CmdHelp, parsed
	}
}

func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--json":
			parsed.JSON = true
		case "--config":
			if i+1 < len(args) {
				i++
				parsed.Config = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsed.Config = strings.TrimPrefix(arg, "--config=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsed
}

func parseExportArgs(args *Args, remaining []string) {
	i := 0
	for i < len(remaining) {
		arg := remaining[i]
		switch {
		case arg == "--output":
			if i+1 < len(remaining) {
				i++
				args.Output = remaining[i]
			}
		case strings.HasPrefix(arg, "--output="):
			args.Output = strings.TrimPrefix(arg, "--output=")
		case args.Subcommand == "":
			args.Subcommand = strings.ToLower(arg)
		}
		i++
	}
}
