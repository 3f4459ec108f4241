// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shellpad is a terminal pad for running shell commands: type
// a command, watch its captured output land in a scrollable, tagged
// buffer.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/shellpad/shellpad/internal/clipboard"
	"github.com/shellpad/shellpad/internal/config"
	"github.com/shellpad/shellpad/internal/runner"
	"github.com/shellpad/shellpad/internal/shell"
	"github.com/shellpad/shellpad/internal/tui"
	"github.com/shellpad/shellpad/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	if !stdioIsTTY() {
		return errors.New("shellpad requires an interactive terminal")
	}
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	if !config.Exists(path) && cfg.Shell == "" {
		choice, err := tui.PromptShell(shell.Candidates(), shell.Default().Path)
		if err != nil {
			return err
		}
		cfg.Shell = choice
		if err := config.Save(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save config: %v\n", err)
		}
	}

	sh := resolveShell(cfg)
	theme := ui.DefaultTheme()
	if cfg.NoColor {
		theme = ui.NewTheme(false)
	}
	model := ui.New(runner.New(sh), sh.Name(), theme, cfg.MaxScrollback, clipboard.WriteText)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

func resolveShell(cfg config.Config) shell.Interpreter {
	if path := strings.TrimSpace(cfg.Shell); path != "" {
		return shell.FromPath(path)
	}
	return shell.Default()
}

func stdioIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
