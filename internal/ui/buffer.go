// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "strings"

// Tag classifies a buffer fragment for styling.
type Tag int

const (
	TagCommand Tag = iota
	TagStdout
	TagStderr
	TagError
)

// Fragment is one tagged piece of output text, newlines included.
type Fragment struct {
	Text string
	Tag  Tag
}

// Buffer is the append-only display scrollback. It is owned by the
// model and must only be mutated from Update.
type Buffer struct {
	frags    []Fragment
	maxLines int
}

func NewBuffer(maxLines int) Buffer {
	return Buffer{maxLines: maxLines}
}

// Append adds a fragment and drops the oldest fragments once the
// line cap is exceeded.
func (b *Buffer) Append(text string, tag Tag) {
	if text == "" {
		return
	}
	b.frags = append(b.frags, Fragment{Text: text, Tag: tag})
	b.trim()
}

// Clear discards all content.
func (b *Buffer) Clear() {
	b.frags = nil
}

func (b *Buffer) Len() int {
	return len(b.frags)
}

// Plain returns the unstyled buffer text.
func (b *Buffer) Plain() string {
	var sb strings.Builder
	for _, f := range b.frags {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// Render returns the styled buffer text.
func (b *Buffer) Render(theme Theme) string {
	var sb strings.Builder
	for _, f := range b.frags {
		sb.WriteString(theme.renderFragment(f))
	}
	return sb.String()
}

// Last returns the most recent fragment, if any.
func (b *Buffer) Last() (Fragment, bool) {
	if len(b.frags) == 0 {
		return Fragment{}, false
	}
	return b.frags[len(b.frags)-1], true
}

func (b *Buffer) trim() {
	if b.maxLines <= 0 {
		return
	}
	total := 0
	for _, f := range b.frags {
		total += countLines(f.Text)
	}
	for total > b.maxLines && len(b.frags) > 1 {
		total -= countLines(b.frags[0].Text)
		b.frags = b.frags[1:]
	}
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
