// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clipboard copies scrollback text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// WriteText places text on the system clipboard. Initialization is
// lazy: headless environments fail on first use, not at startup.
func WriteText(text string) error {
	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", initErr)
	}
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}
