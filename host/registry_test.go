// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"testing"
)

// namedHost is a Host stub that only remembers which factory built it.
type namedHost struct {
	Host
	name  string
	title string
}

func factoryFor(name string) Factory {
	return func(opts Options) (Host, error) {
		return &namedHost{name: name, title: opts.Title}, nil
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, factoryFor("low"), nil)
	r.Register("high", 100, factoryFor("high"), nil)
	r.Register("mid", 50, factoryFor("mid"), nil)

	list := r.List()
	want := []string{"high", "mid", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}
}

func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register("available", 10, factoryFor("available"), func() bool { return true })
	r.Register("unavailable", 200, factoryFor("unavailable"), func() bool { return false })

	available := r.Available()
	if len(available) != 1 || available[0] != "available" {
		t.Errorf("Available() = %v, want [available]", available)
	}
}

func TestRegistryPrioritySelection(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, factoryFor("software"), nil)
	r.Register("sdl", 100, factoryFor("sdl"), nil)

	h, err := r.New(Options{Title: "t", Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := h.(*namedHost).name; got != "sdl" {
		t.Errorf("selected %s, want sdl (highest priority)", got)
	}
	if got := h.(*namedHost).title; got != "t" {
		t.Errorf("title = %q, want options passed through", got)
	}
}

func TestRegistryFallsBackOnFactoryError(t *testing.T) {
	r := NewRegistry()
	errNoDisplay := errors.New("no display")
	r.Register("sdl", 100, func(Options) (Host, error) { return nil, errNoDisplay }, nil)
	r.Register("software", 10, factoryFor("software"), nil)

	h, err := r.New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := h.(*namedHost).name; got != "software" {
		t.Errorf("selected %s, want software after sdl failed", got)
	}
}

func TestRegistryAllFactoriesFail(t *testing.T) {
	r := NewRegistry()
	errNoDisplay := errors.New("no display")
	r.Register("sdl", 100, func(Options) (Host, error) { return nil, errNoDisplay }, nil)

	_, err := r.New(Options{})
	if !errors.Is(err, errNoDisplay) {
		t.Errorf("New() error = %v, want factory error", err)
	}
}

func TestRegistryNoBackend(t *testing.T) {
	r := NewRegistry()

	_, err := r.New(Options{})
	if !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("New() error = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryNewByNameNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewByName("vulkan", Options{})
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected BackendNotFoundError, got %T", err)
	}
	if notFound.Name != "vulkan" {
		t.Errorf("error name = %s, want vulkan", notFound.Name)
	}
	if msg := err.Error(); msg != "host: backend not found: vulkan" {
		t.Errorf("error message = %q", msg)
	}
}

func TestRegistryNewByNameUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("sdl", 100, factoryFor("sdl"), func() bool { return false })

	_, err := r.NewByName("sdl", Options{})
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("expected BackendUnavailableError, got %T", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, factoryFor("temp"), nil)
	r.Unregister("temp")

	if list := r.List(); len(list) != 0 {
		t.Errorf("List() = %v after Unregister, want empty", list)
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{0, 0, 10, 10}, false},
		{Rect{5, 5, 0, 10}, true},
		{Rect{5, 5, 10, -1}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}
