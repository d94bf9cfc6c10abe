// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package app runs the frame loop that drives a toolkit on a ggui surface.
//
// Every tick drains pending input, lets the toolkit advance, paints and
// presents, strictly in that order and on the calling goroutine. A quit
// request from the platform shuts the host down and exits the process
// without tearing the toolkit down.
package app

import (
	"context"
	"os"
	"time"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/input"
)

// Toolkit is the GUI toolkit driven by the loop.
type Toolkit interface {
	// Tick advances toolkit state after input has been dispatched.
	Tick()

	// Paint draws the panel tree through b.
	Paint(b ggui.Backend)
}

// Option configures a Loop.
type Option func(*Loop)

// WithMinimumTickInterval sets the shortest time between two ticks.
// Zero, the default, runs ticks back to back.
func WithMinimumTickInterval(d time.Duration) Option {
	return func(l *Loop) {
		l.SetMinimumTickInterval(d)
	}
}

// WithExitFunc replaces os.Exit as the function called on quit.
func WithExitFunc(fn func(code int)) Option {
	return func(l *Loop) {
		if fn != nil {
			l.exit = fn
		}
	}
}

// WithFrameLimit stops Run after n frames. Zero means no limit.
func WithFrameLimit(n int) Option {
	return func(l *Loop) {
		l.frameLimit = max(n, 0)
	}
}

// Loop drives a toolkit on a surface.
type Loop struct {
	surface    *ggui.Surface
	input      *input.Translator
	toolkit    Toolkit
	interval   time.Duration
	frameLimit int
	frames     int
	exit       func(code int)
}

// New creates a loop. The translator must read from the surface's host.
func New(s *ggui.Surface, tr *input.Translator, tk Toolkit, opts ...Option) *Loop {
	l := &Loop{
		surface: s,
		input:   tr,
		toolkit: tk,
		exit:    os.Exit,
	}
	for _, fn := range opts {
		fn(l)
	}
	return l
}

// SetMinimumTickInterval sets the shortest time between two ticks.
func (l *Loop) SetMinimumTickInterval(d time.Duration) {
	l.interval = max(d, 0)
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Step runs one tick: drain input, tick the toolkit, paint and present.
// If draining requests an exit nothing else happens and the exit state is
// returned.
func (l *Loop) Step() input.State {
	if st := l.input.Drain(); st == input.StateExitRequested {
		return st
	}
	l.toolkit.Tick()
	l.toolkit.Paint(l.surface)
	l.surface.Present()
	l.frames++
	return input.StateRunning
}

// Run ticks until the platform asks to quit, the frame limit is reached or
// ctx is done. On quit the host is shut down and the exit function is
// called with status 0; Run only returns afterwards if the exit function
// does.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		if l.Step() == input.StateExitRequested {
			ggui.Logger().Info("app: exiting on quit request", "frames", l.frames)
			l.surface.Host().Shutdown()
			l.exit(0)
			return nil
		}
		if l.frameLimit > 0 && l.frames >= l.frameLimit {
			return nil
		}

		if wait := l.interval - time.Since(start); wait > 0 {
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
	}
}
