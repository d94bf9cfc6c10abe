// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import "github.com/gogpu/ggui/internal/texture"

// Option configures a Surface during creation.
//
// Example:
//
//	s := ggui.New(h, ggui.WithTextureCapacity(256))
type Option func(*options)

type options struct {
	textureCapacity int
	title           string
}

func defaultOptions() options {
	return options{
		textureCapacity: texture.Capacity,
	}
}

// WithTextureCapacity sets the number of texture ids the surface can hand
// out. Non-positive values keep the default of 4096.
func WithTextureCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.textureCapacity = n
		}
	}
}

// WithTitle sets the window title when the surface is created.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}
