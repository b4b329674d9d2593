// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package clipboard writes concept exports to the system clipboard.
package clipboard

import (
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"
)

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// Copy writes text to the system clipboard and reports whether it worked.
// Failures (no clipboard utility, headless session) are logged, never
// returned.
func Copy(text string) bool {
	if clipboard.Unsupported {
		slog.Warn("clipboard copy failed", "error", errors.New("no clipboard utility available"))
		return false
	}
	if err := writeAll(text); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		return false
	}
	return true
}
