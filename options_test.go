// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"testing"

	"github.com/gogpu/ggui/internal/texture"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		capacity int
		title    string
	}{
		{"defaults", nil, texture.Capacity, ""},
		{"capacity", []Option{WithTextureCapacity(16)}, 16, ""},
		{"non-positive capacity", []Option{WithTextureCapacity(0)}, texture.Capacity, ""},
		{"title", []Option{WithTitle("demo")}, texture.Capacity, "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, fn := range tt.opts {
				fn(&o)
			}
			if o.textureCapacity != tt.capacity {
				t.Errorf("textureCapacity = %d, want %d", o.textureCapacity, tt.capacity)
			}
			if o.title != tt.title {
				t.Errorf("title = %q, want %q", o.title, tt.title)
			}
		})
	}
}
