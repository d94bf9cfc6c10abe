// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"errors"
	"testing"

	"github.com/gogpu/ggui/host"
	"github.com/gogpu/ggui/host/soft"
)

func newRegistry(t *testing.T, capacity int) (*Registry, *soft.Host) {
	t.Helper()
	h := soft.New(host.Options{Width: 8, Height: 8})
	t.Cleanup(func() { _ = h.Close() })
	return New(h, capacity), h
}

func TestAllocateMonotonic(t *testing.T) {
	r, _ := newRegistry(t, 3)

	for want := 0; want < 3; want++ {
		id, err := r.Allocate()
		if err != nil {
			t.Fatalf("Allocate() error = %v", err)
		}
		if id != want {
			t.Errorf("Allocate() = %d, want %d", id, want)
		}
	}

	id, err := r.Allocate()
	if !errors.Is(err, ErrTexturesExhausted) {
		t.Errorf("Allocate() past capacity error = %v, want ErrTexturesExhausted", err)
	}
	if id != -1 {
		t.Errorf("Allocate() past capacity = %d, want -1", id)
	}
	if r.Allocated() != 3 {
		t.Errorf("Allocated() = %d, want 3", r.Allocated())
	}
}

func TestDefaultCapacity(t *testing.T) {
	r, _ := newRegistry(t, 0)
	if r.Cap() != Capacity {
		t.Errorf("Cap() = %d, want %d", r.Cap(), Capacity)
	}
}

func TestReplaceDestroysPrevious(t *testing.T) {
	r, h := newRegistry(t, 4)
	id, _ := r.Allocate()

	if err := r.Replace(id, make([]byte, 4), 1, 1); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	first, _ := r.Get(id)

	if err := r.Replace(id, make([]byte, 16), 2, 2); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	second, ok := r.Get(id)
	if !ok {
		t.Fatal("Get() after Replace reported no texture")
	}
	if !first.(*soft.Texture).Destroyed() {
		t.Error("Replace should destroy the previous texture")
	}
	if w, hh := second.Size(); w != 2 || hh != 2 {
		t.Errorf("Size() = %dx%d, want 2x2", w, hh)
	}
	if h.LiveTextures() != 1 {
		t.Errorf("LiveTextures() = %d, want 1", h.LiveTextures())
	}
}

func TestReplaceFailureLeavesSlotEmpty(t *testing.T) {
	r, _ := newRegistry(t, 4)
	id, _ := r.Allocate()
	_ = r.Replace(id, make([]byte, 4), 1, 1)

	err := r.Replace(id, nil, 4, 4)
	if !errors.Is(err, soft.ErrInvalidTexture) {
		t.Errorf("Replace(bad) error = %v, want wrapped ErrInvalidTexture", err)
	}
	if _, ok := r.Get(id); ok {
		t.Error("slot should be empty after a failed Replace")
	}
}

func TestInvalidIDsAreIgnored(t *testing.T) {
	r, h := newRegistry(t, 2)
	id, _ := r.Allocate()
	_ = r.Replace(id, make([]byte, 4), 1, 1)
	r.Bind(id)

	for _, bad := range []int{-1, 2, 1 << 20} {
		if err := r.Replace(bad, make([]byte, 4), 1, 1); err != nil {
			t.Errorf("Replace(%d) error = %v, want nil", bad, err)
		}
		r.Bind(bad)
		if r.BoundID() != id {
			t.Errorf("Bind(%d) changed binding to %d", bad, r.BoundID())
		}
		if _, ok := r.Get(bad); ok {
			t.Errorf("Get(%d) reported a texture", bad)
		}
	}
	if h.LiveTextures() != 1 {
		t.Errorf("LiveTextures() = %d, want 1", h.LiveTextures())
	}
}

func TestBound(t *testing.T) {
	r, _ := newRegistry(t, 2)
	if _, ok := r.Bound(); ok {
		t.Error("Bound() before Bind should report false")
	}

	r.Bind(1)
	if _, ok := r.Bound(); ok {
		t.Error("Bound() on an empty slot should report false")
	}

	_ = r.Replace(1, make([]byte, 4), 1, 1)
	if _, ok := r.Bound(); !ok {
		t.Error("Bound() should report the uploaded texture")
	}
}

func TestDestroyAll(t *testing.T) {
	r, h := newRegistry(t, 8)
	for i := 0; i < 3; i++ {
		id, _ := r.Allocate()
		_ = r.Replace(id, make([]byte, 4), 1, 1)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	r.DestroyAll()

	if r.Len() != 0 || h.LiveTextures() != 0 {
		t.Errorf("after DestroyAll: Len() = %d, LiveTextures() = %d", r.Len(), h.LiveTextures())
	}
	if id, _ := r.Allocate(); id != 3 {
		t.Errorf("ids must not be recycled: Allocate() = %d, want 3", id)
	}
}
