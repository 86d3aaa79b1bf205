package factory

import (
	"sync"

	"github.com/pkg/errors"
)

// Registry - name -> factory.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Named
}

var defaultRegistry = NewRegistry()

// NewRegistry - empty registry, tests mostly; package functions use the default one.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Named)}
}

// Register _ .
func (r *Registry) Register(f Named) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[f.Name()]; ok {
		return errors.Wrap(ErrFactoryExists, f.Name())
	}

	r.factories[f.Name()] = f

	return nil
}

// Lookup _ .
func (r *Registry) Lookup(name string) (Named, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	if !ok {
		return nil, errors.Wrap(ErrFactoryNotFound, name)
	}

	return f, nil
}

// For - factory associated with the Popo p.
func (r *Registry) For(p HasFactory) (Named, error) {
	return r.Lookup(p.PopoFactory())
}

// Register - into default registry.
func Register(f Named) error { return defaultRegistry.Register(f) }

// MustRegister - Register which panics, for init functions.
func MustRegister(f Named) {
	if err := Register(f); err != nil {
		panic(err)
	}
}

// Lookup - from default registry.
func Lookup(name string) (Named, error) { return defaultRegistry.Lookup(name) }

// For - from default registry.
func For(p HasFactory) (Named, error) { return defaultRegistry.For(p) }

// Resolve - typed factory associated with p in the default registry.
func Resolve[T any](p HasFactory) (*Factory[T], error) {
	return ResolveIn[T](defaultRegistry, p)
}

// ResolveIn - typed factory associated with p in r.
func ResolveIn[T any](r *Registry, p HasFactory) (*Factory[T], error) {
	named, err := r.For(p)
	if err != nil {
		return nil, err
	}

	f, ok := named.(*Factory[T])
	if !ok {
		return nil, errors.Wrap(ErrFactoryType, named.Name())
	}

	return f, nil
}
