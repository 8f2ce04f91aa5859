package registry

import (
	"fmt"
	"sync"
)

// Factory builds an object from the arguments a caller passed to Create.
// Factories are responsible for binding args against their own signature.
type Factory func(args Args) (any, error)

// Wrapper receives the signature and the currently registered factory and
// returns the factory that replaces it.
type Wrapper func(sig Signature, original Factory) Factory

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("constructor %s not found", e.Name)
}

type entry struct {
	signature Signature
	factory   Factory
	markers   map[string]bool
}

// Registry maps constructor names to their signature and current factory.
type Registry struct {
	constructors map[string]*entry
	mu           sync.RWMutex
}

// Default is the process-wide registry libraries register into from init().
var Default = New()

func New() *Registry {
	return &Registry{constructors: make(map[string]*entry)}
}

// Register adds or replaces a constructor. Replacing drops any markers set by Wrap.
func (r *Registry) Register(name string, sig Signature, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = &entry{
		signature: sig,
		factory:   factory,
		markers:   make(map[string]bool),
	}
}

func (r *Registry) Create(name string, args Args) (any, error) {
	r.mu.RLock()
	e, ok := r.constructors[name]
	var factory Factory
	if ok {
		factory = e.factory
	}
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return factory(args)
}

// Lookup returns the signature a constructor was registered with.
func (r *Registry) Lookup(name string) (Signature, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.constructors[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return e.signature, nil
}

// Marked reports whether the constructor carries marker.
func (r *Registry) Marked(name, marker string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.constructors[name]
	return ok && e.markers[marker]
}

// Wrap replaces the factory of name with wrapper(signature, factory) and sets
// marker on it. When marker is already set nothing changes and Wrap returns false.
func (r *Registry) Wrap(name, marker string, wrapper Wrapper) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.constructors[name]
	if !ok {
		return false, &NotFoundError{Name: name}
	}
	if e.markers[marker] {
		return false, nil
	}

	wrapped := wrapper(e.signature, e.factory)
	if wrapped == nil {
		return false, fmt.Errorf("wrapper for %s returned a nil factory", name)
	}
	e.factory = wrapped
	e.markers[marker] = true
	return true, nil
}

func Register(name string, sig Signature, factory Factory) {
	Default.Register(name, sig, factory)
}

func Create(name string, args Args) (any, error) {
	return Default.Create(name, args)
}
