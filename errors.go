// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"errors"

	"github.com/gogpu/ggui/internal/texture"
)

// Sentinel errors.
var (
	// ErrTexturesExhausted is returned when every texture id has been allocated.
	ErrTexturesExhausted = texture.ErrTexturesExhausted

	// ErrClosed is returned by operations on a closed surface.
	ErrClosed = errors.New("ggui: surface is closed")
)
