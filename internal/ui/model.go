// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui implements the shellpad terminal UI: a prompt, a
// scrollable tagged output buffer, and per-command background
// execution. The Buffer is mutated only inside Update; runner
// goroutines report back exclusively through messages.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shellpad/shellpad/internal/runner"
)

const promptPrefix = "$ "

type execDoneMsg struct {
	result runner.Result
	err    error
}

type copyDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the command pad.
type Model struct {
	buf      Buffer
	input    textinput.Model
	view     viewport.Model
	spin     spinner.Model
	runner   runner.Runner
	copyText func(string) error
	theme    Theme

	shellName string
	inflight  int
	width     int
	height    int
	ready     bool
}

// New builds the model. copyText may be nil to disable clipboard
// support.
func New(r runner.Runner, shellName string, theme Theme, maxScrollback int, copyText func(string) error) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = ""
	input.Focus()
	input.CharLimit = 0
	input.Width = 80

	spin := spinner.New()
	spin.Spinner = spinner.Spinner{Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, FPS: 120 * time.Millisecond}

	return Model{
		buf:       NewBuffer(maxScrollback),
		input:     input,
		view:      viewport.New(0, 0),
		spin:      spin,
		runner:    r,
		copyText:  copyText,
		theme:     theme,
		shellName: shellName,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			// In-flight commands are abandoned, not joined.
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.buf.Clear()
			m.syncViewport()
			return m, nil
		case tea.KeyCtrlY:
			return m, m.copyCmd()
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case execDoneMsg:
		m.inflight--
		m.appendResult(msg)
		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			m.buf.Append(fmt.Sprintf("Error: %v\n", msg.err), TagError)
			m.syncViewport()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	lines := []string{
		m.renderHeader(),
		m.view.View(),
		m.renderPrompt(),
		m.renderFooter(),
	}
	return strings.Join(lines, "\n")
}

// submit reads and trims the input. Empty input is silently ignored:
// no buffer change, no process spawned.
func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return nil
	}
	m.buf.Append(promptPrefix+line+"\n", TagCommand)
	m.syncViewport()
	m.inflight++
	return m.execCmd(line)
}

// execCmd runs one command on its own goroutine via the Bubble Tea
// command machinery. There is no pool, queue, or concurrency cap.
func (m *Model) execCmd(command string) tea.Cmd {
	r := m.runner
	return func() tea.Msg {
		res, err := r.Run(context.Background(), command)
		return execDoneMsg{result: res, err: err}
	}
}

func (m *Model) appendResult(msg execDoneMsg) {
	if msg.err != nil {
		m.buf.Append(fmt.Sprintf("Error: %v\n", msg.err), TagError)
		m.syncViewport()
		return
	}
	if msg.result.Stdout != "" {
		m.buf.Append(msg.result.Stdout, TagStdout)
	}
	if msg.result.Stderr != "" {
		m.buf.Append(msg.result.Stderr, TagStderr)
	}
	if msg.result.ExitCode != 0 {
		m.buf.Append(fmt.Sprintf("Command exited with code %d\n", msg.result.ExitCode), TagError)
	}
	m.syncViewport()
}

func (m *Model) copyCmd() tea.Cmd {
	if m.copyText == nil || m.buf.Len() == 0 {
		return nil
	}
	text := m.buf.Plain()
	copyText := m.copyText
	return func() tea.Msg {
		return copyDoneMsg{err: copyText(text)}
	}
}

// syncViewport re-renders the buffer and snaps to the latest content.
func (m *Model) syncViewport() {
	m.view.SetContent(m.buf.Render(m.theme))
	m.view.GotoBottom()
}

func (m *Model) layout() {
	m.ready = m.width > 0 && m.height > 0
	m.view.Width = m.width
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	m.view.Height = height
	inputWidth := m.width - len(promptPrefix) - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
	m.syncViewport()
}

func (m Model) renderHeader() string {
	shellName := m.shellName
	if shellName == "" {
		shellName = "<unset>"
	}
	if !m.theme.Enabled {
		status := "●"
		if m.inflight > 0 {
			status = "○"
		}
		return fmt.Sprintf("%s shellpad shell=%s jobs=%d", status, shellName, m.inflight)
	}
	status := m.theme.StatusIdle.Render("●")
	if m.inflight > 0 {
		status = m.theme.StatusBusy.Render("○")
	}
	return fmt.Sprintf("%s %s  %s%s  %s%s",
		status,
		m.theme.Brand.Render("shellpad"),
		m.theme.Label.Render("shell="),
		m.theme.Value.Render(shellName),
		m.theme.Label.Render("jobs="),
		m.theme.Value.Render(fmt.Sprintf("%d", m.inflight)),
	)
}

func (m Model) renderPrompt() string {
	prefix := promptPrefix
	if m.theme.Enabled {
		prefix = m.theme.Command.Render(strings.TrimRight(promptPrefix, " ")) + " "
	}
	line := prefix + m.input.View()
	if m.inflight > 0 {
		line += " " + m.spin.View()
	}
	return line
}

func (m Model) renderFooter() string {
	hints := "enter run • ctrl+l clear • ctrl+y copy • ctrl+c quit"
	if !m.theme.Enabled {
		return hints
	}
	return m.theme.Muted.Render(hints)
}
