// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texture provides the bounded texture arena a surface draws from.
//
// Textures are addressed by small integer ids handed out in increasing order
// starting at zero. Ids are never recycled: once the capacity is exhausted
// no further ids can be allocated for the lifetime of the registry.
package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggui/host"
)

// Capacity is the default number of texture slots.
const Capacity = 4096

// ErrTexturesExhausted is returned by Allocate once every slot has been handed out.
var ErrTexturesExhausted = errors.New("texture: all texture ids are in use")

// Factory creates native textures. host.Renderer satisfies it.
type Factory interface {
	CreateTexture(rgba []byte, width, height int) (host.Texture, error)
}

// Registry is an append-only arena of host textures indexed by id.
//
// Invalid ids (outside [0, capacity)) are ignored by every method; the
// render loop never sees an error for a stale or bogus id.
//
// Registry is not safe for concurrent use.
type Registry struct {
	factory Factory
	slots   []host.Texture
	next    int
	bound   int
}

// New creates a registry with room for capacity textures.
// A non-positive capacity selects Capacity.
func New(factory Factory, capacity int) *Registry {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Registry{
		factory: factory,
		slots:   make([]host.Texture, capacity),
		bound:   -1,
	}
}

// Cap returns the number of slots.
func (r *Registry) Cap() int {
	return len(r.slots)
}

// Allocate reserves the next texture id.
func (r *Registry) Allocate() (int, error) {
	if r.next >= len(r.slots) {
		return -1, ErrTexturesExhausted
	}
	id := r.next
	r.next++
	return id, nil
}

// Allocated returns how many ids have been handed out.
func (r *Registry) Allocated() int {
	return r.next
}

// Valid reports whether id addresses a slot.
func (r *Registry) Valid(id int) bool {
	return id >= 0 && id < len(r.slots)
}

// Replace destroys the texture stored at id, if any, and stores a new one
// created from rgba. If creation fails the slot is left empty.
func (r *Registry) Replace(id int, rgba []byte, width, height int) error {
	if !r.Valid(id) {
		return nil
	}
	if old := r.slots[id]; old != nil {
		old.Destroy()
		r.slots[id] = nil
	}

	tex, err := r.factory.CreateTexture(rgba, width, height)
	if err != nil {
		return fmt.Errorf("texture: replace %d: %w", id, err)
	}
	r.slots[id] = tex
	return nil
}

// Bind selects id as the current texture. Invalid ids leave the binding unchanged.
func (r *Registry) Bind(id int) {
	if !r.Valid(id) {
		return
	}
	r.bound = id
}

// BoundID returns the selected id, or -1 when nothing was bound yet.
func (r *Registry) BoundID() int {
	return r.bound
}

// Bound returns the texture stored at the selected id.
// The second result is false when no id is bound or its slot is empty.
func (r *Registry) Bound() (host.Texture, bool) {
	return r.Get(r.bound)
}

// Get returns the texture stored at id.
func (r *Registry) Get(id int) (host.Texture, bool) {
	if !r.Valid(id) || r.slots[id] == nil {
		return nil, false
	}
	return r.slots[id], true
}

// Len returns the number of live textures.
func (r *Registry) Len() int {
	n := 0
	for _, t := range r.slots {
		if t != nil {
			n++
		}
	}
	return n
}

// DestroyAll releases every live texture. Allocated ids stay reserved.
func (r *Registry) DestroyAll() {
	for i, t := range r.slots {
		if t != nil {
			t.Destroy()
			r.slots[i] = nil
		}
	}
}
