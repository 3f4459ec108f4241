// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell resolves the platform command interpreter used for
// shell-mediated execution.
package shell

import (
	"bufio"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Interpreter is a command interpreter invocation: the binary plus the
// flag that makes it run a single command string.
type Interpreter struct {
	Path string
	Flag string
}

// Default picks a sensible interpreter for the current platform.
func Default() Interpreter {
	if runtime.GOOS == "windows" {
		path := os.Getenv("COMSPEC")
		if path == "" {
			path = "cmd.exe"
		}
		return Interpreter{Path: path, Flag: "/c"}
	}
	path := os.Getenv("SHELL")
	if path == "" {
		path = "/bin/sh"
	}
	return Interpreter{Path: path, Flag: "-c"}
}

// FromPath builds an interpreter for an explicitly configured binary.
func FromPath(path string) Interpreter {
	if runtime.GOOS == "windows" {
		lower := strings.ToLower(path)
		if strings.Contains(lower, "cmd") || strings.Contains(lower, "powershell") || strings.Contains(lower, "pwsh") {
			return Interpreter{Path: path, Flag: "/c"}
		}
	}
	return Interpreter{Path: path, Flag: "-c"}
}

// Name returns the short display name of the interpreter binary.
func (i Interpreter) Name() string {
	path := strings.TrimSpace(i.Path)
	if path == "" {
		return ""
	}
	idx := strings.LastIndexAny(path, `/\`)
	if idx == -1 {
		return path
	}
	return path[idx+1:]
}

// Candidates lists interpreters available on this machine, default
// first. On Unix it merges /etc/shells with well-known names found on
// PATH; duplicates are dropped.
func Candidates() []string {
	def := Default().Path
	out := []string{def}
	seen := map[string]bool{def: true}
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		out = append(out, path)
	}
	if runtime.GOOS == "windows" {
		for _, name := range []string{"powershell.exe", "pwsh.exe"} {
			if path, err := exec.LookPath(name); err == nil {
				add(path)
			}
		}
		return out
	}
	for _, path := range listEtcShells() {
		add(path)
	}
	for _, name := range []string{"bash", "zsh", "fish", "sh"} {
		if path, err := exec.LookPath(name); err == nil {
			add(path)
		}
	}
	return out
}

func listEtcShells() []string {
	file, err := os.Open("/etc/shells")
	if err != nil {
		return nil
	}
	defer file.Close()
	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := os.Stat(line); err != nil {
			continue
		}
		out = append(out, line)
	}
	return out
}
