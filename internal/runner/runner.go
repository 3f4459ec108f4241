// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner executes one shell command to completion and captures
// its output. It never streams: callers see nothing until the process
// exits.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/shellpad/shellpad/internal/shell"
)

// Result holds the captured output of one completed command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs a command string through a shell and waits for it.
type Runner interface {
	Run(ctx context.Context, command string) (Result, error)
}

// Func adapts a plain function to the Runner interface, mirroring
// http.HandlerFunc. Used by tests to stub execution.
type Func func(ctx context.Context, command string) (Result, error)

// Run calls f.
func (f Func) Run(ctx context.Context, command string) (Result, error) {
	return f(ctx, command)
}

type shellRunner struct {
	sh shell.Interpreter
}

// New returns a Runner that executes commands via the given interpreter.
func New(sh shell.Interpreter) Runner {
	return &shellRunner{sh: sh}
}

// Run spawns `<shell> <flag> <command>` and blocks until the process
// exits. A non-zero exit is not an error: it is reported through
// Result.ExitCode, with whatever the process wrote on both streams.
// An error return means the process could not be spawned at all.
func (r *shellRunner) Run(ctx context.Context, command string) (Result, error) {
	cmd := exec.CommandContext(ctx, r.sh.Path, r.sh.Flag, command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return Result{}, err
}
