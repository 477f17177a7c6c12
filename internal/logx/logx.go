// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is the solve kernel's structured-logging seam: a
// package-level zerolog.Logger wired to an explicit io.Writer, defaulting
// to a discard writer so the kernel never writes to standard streams on
// its own — only a caller that explicitly wires a writer (the CLI) gets
// output.
package logx

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w. Passing io.Discard, or nil (which is
// replaced by io.Discard), yields a logger that drops every
// event, satisfying the "no logging to standard streams by default"
// requirement while still letting internal code unconditionally emit
// diagnostic events.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Discard is the default logger: every event is dropped.
var Discard = New(io.Discard)
