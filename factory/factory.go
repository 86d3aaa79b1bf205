// Package factory - named fixture builders for Popo types.
//
// A Popo declares its builder by name (HasFactory), the builder is registered once
// (usually from init) and tests resolve it from a Popo value or by name.
package factory

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

var (
	// ErrFactoryNotFound - no factory registered under the name.
	ErrFactoryNotFound = errors.New("factory not found")
	// ErrFactoryExists - name already taken.
	ErrFactoryExists = errors.New("factory already registered")
	// ErrFactoryType - registered factory builds another type.
	ErrFactoryType = errors.New("factory builds another type")
)

type (
	// HasFactory - Popo which knows the name of its fixture builder.
	HasFactory interface {
		PopoFactory() string
	}

	// Named - type erased factory, what the registry stores.
	Named interface {
		Name() string
		MakeAny() any
	}

	// Builder - builds the seq-th fixture (seq starts at 1).
	Builder[T any] func(seq int) T

	// State - modifies a freshly built fixture.
	State[T any] func(T) T

	// Factory - immutable fixture builder; State returns a new Factory.
	Factory[T any] struct {
		name   string
		build  Builder[T]
		states []State[T]
		seq    *atomic.Int64 // shared by all State copies
	}
)

// New - factory called name building T with build.
func New[T any](name string, build func(seq int) T) *Factory[T] {
	return &Factory[T]{name: name, build: build, seq: atomic.NewInt64(0)}
}

// Name _ .
func (f *Factory[T]) Name() string { return f.name }

// State - copy of f which applies st to every built fixture after previous states.
func (f *Factory[T]) State(st State[T]) *Factory[T] {
	states := make([]State[T], 0, len(f.states)+1)
	states = append(states, f.states...)

	return &Factory[T]{name: f.name, build: f.build, states: append(states, st), seq: f.seq}
}

// Make - next fixture.
func (f *Factory[T]) Make() T {
	v := f.build(int(f.seq.Inc()))
	for _, st := range f.states {
		v = st(v)
	}

	return v
}

// MakeMany - next n fixtures, never nil.
func (f *Factory[T]) MakeMany(n int) []T {
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, f.Make())
	}

	return out
}

// MakeAny - Make for the type erased registry.
func (f *Factory[T]) MakeAny() any { return f.Make() }

// Reset - restart sequence numbering, shared by all State copies.
func (f *Factory[T]) Reset() { f.seq.Store(0) }
