// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shellpad/shellpad/internal/runner"
)

func resultRunner(res runner.Result, err error) runner.Runner {
	return runner.Func(func(ctx context.Context, command string) (runner.Result, error) {
		return res, err
	})
}

func newTestModel(r runner.Runner) Model {
	if r == nil {
		r = resultRunner(runner.Result{}, nil)
	}
	return New(r, "sh", NewTheme(false), 0, nil)
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestSubmitEchoesCommandAndSpawns(t *testing.T) {
	m := newTestModel(nil)
	m.input.SetValue("echo hello")
	m, cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatal("expected an exec command")
	}
	if got := m.buf.Plain(); got != "$ echo hello\n" {
		t.Fatalf("unexpected buffer: %q", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("input not cleared: %q", m.input.Value())
	}
	if m.inflight != 1 {
		t.Fatalf("unexpected inflight count: %d", m.inflight)
	}
}

func TestSubmitEmptyInputIsIgnored(t *testing.T) {
	for _, value := range []string{"", "   ", "\t"} {
		m := newTestModel(nil)
		m.input.SetValue(value)
		m, cmd := pressEnter(t, m)
		if cmd != nil {
			t.Fatalf("input %q spawned a command", value)
		}
		if m.buf.Len() != 0 {
			t.Fatalf("input %q changed the buffer: %q", value, m.buf.Plain())
		}
	}
}

func TestExecResultAppendsStdout(t *testing.T) {
	m := newTestModel(resultRunner(runner.Result{Stdout: "hello\n"}, nil))
	m.input.SetValue("echo hello")
	m, cmd := pressEnter(t, m)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if got := m.buf.Plain(); got != "$ echo hello\nhello\n" {
		t.Fatalf("unexpected buffer: %q", got)
	}
	last, _ := m.buf.Last()
	if last.Tag != TagStdout {
		t.Fatalf("unexpected tag: %v", last.Tag)
	}
	if m.inflight != 0 {
		t.Fatalf("inflight not decremented: %d", m.inflight)
	}
}

func TestExecResultNonZeroExitAppendsErrorLast(t *testing.T) {
	m := newTestModel(resultRunner(runner.Result{Stdout: "partial\n", ExitCode: 3}, nil))
	m.input.SetValue("exit 3")
	m, cmd := pressEnter(t, m)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	last, ok := m.buf.Last()
	if !ok {
		t.Fatal("empty buffer")
	}
	if last.Text != "Command exited with code 3\n" {
		t.Fatalf("unexpected last fragment: %q", last.Text)
	}
	if last.Tag != TagError {
		t.Fatalf("unexpected tag: %v", last.Tag)
	}
	if !strings.Contains(m.buf.Plain(), "partial\n") {
		t.Fatalf("stdout dropped: %q", m.buf.Plain())
	}
}

func TestExecResultStderrTagged(t *testing.T) {
	m := newTestModel(resultRunner(runner.Result{Stderr: "oops\n"}, nil))
	m.input.SetValue("badcmd")
	m, cmd := pressEnter(t, m)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	last, _ := m.buf.Last()
	if last.Text != "oops\n" || last.Tag != TagStderr {
		t.Fatalf("unexpected fragment: %+v", last)
	}
}

func TestSpawnFailureAppendsErrorLine(t *testing.T) {
	m := newTestModel(resultRunner(runner.Result{}, errors.New("no such file or directory")))
	m.input.SetValue("nonexistent-binary-xyz")
	m, cmd := pressEnter(t, m)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	last, ok := m.buf.Last()
	if !ok {
		t.Fatal("empty buffer")
	}
	if last.Tag != TagError {
		t.Fatalf("unexpected tag: %v", last.Tag)
	}
	if last.Text != "Error: no such file or directory\n" {
		t.Fatalf("unexpected fragment: %q", last.Text)
	}
}

func TestCompletionOrderFollowsFinishOrder(t *testing.T) {
	r := runner.Func(func(ctx context.Context, command string) (runner.Result, error) {
		return runner.Result{Stdout: command + "-out\n"}, nil
	})
	m := newTestModel(r)
	m.input.SetValue("aaa")
	m, cmdA := pressEnter(t, m)
	m.input.SetValue("bbb")
	m, cmdB := pressEnter(t, m)
	if m.inflight != 2 {
		t.Fatalf("unexpected inflight count: %d", m.inflight)
	}
	// B finishes first, so its output lands first.
	updated, _ := m.Update(cmdB())
	m = updated.(Model)
	updated, _ = m.Update(cmdA())
	m = updated.(Model)
	got := m.buf.Plain()
	bIdx := strings.Index(got, "bbb-out")
	aIdx := strings.Index(got, "aaa-out")
	if bIdx == -1 || aIdx == -1 || bIdx > aIdx {
		t.Fatalf("unexpected interleaving: %q", got)
	}
}

func TestCtrlLClearsBuffer(t *testing.T) {
	m := newTestModel(resultRunner(runner.Result{Stdout: "hello\n"}, nil))
	m.input.SetValue("echo hello")
	m, cmd := pressEnter(t, m)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)
	if m.buf.Len() != 0 {
		t.Fatalf("buffer not cleared: %q", m.buf.Plain())
	}
	// A later run still appends to the emptied buffer.
	m.input.SetValue("echo again")
	m, cmd = pressEnter(t, m)
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if got := m.buf.Plain(); got != "$ echo again\nhello\n" {
		t.Fatalf("unexpected buffer after clear: %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD} {
		m := newTestModel(nil)
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("key %v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %v: expected quit message", key)
		}
	}
}

func TestCopyUsesBufferText(t *testing.T) {
	var copied string
	m := New(resultRunner(runner.Result{Stdout: "hello\n"}, nil), "sh", NewTheme(false), 0, func(text string) error {
		copied = text
		return nil
	})
	m.input.SetValue("echo hello")
	m, cmd := pressEnter(t, m)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	updated, copyCmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = updated.(Model)
	if copyCmd == nil {
		t.Fatal("expected a copy command")
	}
	if msg := copyCmd(); msg.(copyDoneMsg).err != nil {
		t.Fatalf("unexpected copy error: %v", msg.(copyDoneMsg).err)
	}
	if copied != "$ echo hello\nhello\n" {
		t.Fatalf("unexpected clipboard text: %q", copied)
	}
}

func TestCopyWithEmptyBufferIsNoop(t *testing.T) {
	m := newTestModel(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd != nil {
		t.Fatal("expected no copy command for an empty buffer")
	}
}

func TestCopyFailureReported(t *testing.T) {
	m := New(resultRunner(runner.Result{}, nil), "sh", NewTheme(false), 0, nil)
	m.buf.Append("x\n", TagStdout)
	updated, _ := m.Update(copyDoneMsg{err: errors.New("clipboard unavailable")})
	m = updated.(Model)
	last, _ := m.buf.Last()
	if last.Tag != TagError || !strings.Contains(last.Text, "clipboard unavailable") {
		t.Fatalf("unexpected fragment: %+v", last)
	}
}

func TestViewRendersChrome(t *testing.T) {
	m := newTestModel(nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	view := m.View()
	if !strings.Contains(view, "shellpad") {
		t.Fatalf("header missing: %q", view)
	}
	if !strings.Contains(view, "shell=sh") {
		t.Fatalf("shell name missing: %q", view)
	}
	if !strings.Contains(view, "ctrl+l clear") {
		t.Fatalf("footer missing: %q", view)
	}
}

func TestViewEmptyBeforeFirstSize(t *testing.T) {
	m := newTestModel(nil)
	if got := m.View(); got != "" {
		t.Fatalf("expected empty view before layout, got %q", got)
	}
}
