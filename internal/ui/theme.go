// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles for the output buffer and chrome. A zero
// Theme (Enabled false) renders everything as plain text.
type Theme struct {
	Enabled bool

	Command lipgloss.Style
	Stdout  lipgloss.Style
	Stderr  lipgloss.Style
	Error   lipgloss.Style

	Brand      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Muted      lipgloss.Style
	StatusIdle lipgloss.Style
	StatusBusy lipgloss.Style
}

// DefaultTheme builds the theme, honoring the terminal environment.
func DefaultTheme() Theme {
	return NewTheme(stylesEnabled())
}

func NewTheme(enabled bool) Theme {
	if !enabled {
		return Theme{}
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	return Theme{
		Enabled: true,
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		Stdout:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Stderr:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		Brand:      lipgloss.NewStyle().Bold(true),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:      muted,
		StatusIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		StatusBusy: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	}
}

func (t Theme) styleFor(tag Tag) lipgloss.Style {
	switch tag {
	case TagCommand:
		return t.Command
	case TagStderr:
		return t.Stderr
	case TagError:
		return t.Error
	default:
		return t.Stdout
	}
}

// renderFragment styles each line separately so color resets never
// bleed across line boundaries in the viewport.
func (t Theme) renderFragment(f Fragment) string {
	if !t.Enabled {
		return f.Text
	}
	style := t.styleFor(f.Tag)
	lines := strings.Split(f.Text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func stylesEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	return true
}
