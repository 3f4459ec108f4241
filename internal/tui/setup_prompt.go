// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds the interactive prompts shown outside the main
// program loop.
package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// PromptShell asks which interpreter to run commands through. A
// cancelled form falls back to the default rather than erroring.
func PromptShell(candidates []string, defaultShell string) (string, error) {
	if len(candidates) == 0 {
		return defaultShell, nil
	}
	value := defaultShell
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Choose your shell").
			Description("Commands are run through this interpreter.").
			Options(huh.NewOptions(candidates...)...).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return defaultShell, nil
		}
		return "", err
	}
	return value, nil
}
