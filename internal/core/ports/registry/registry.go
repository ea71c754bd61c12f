package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

// bindings is an immutable snapshot of capability type to implementation.
type bindings map[reflect.Type]any

// Registry binds capability port types to exactly one implementation each.
// Lookups are lock-free reads of the current snapshot. Writers serialize
// among themselves and publish a fresh snapshot, so a reader never sees a
// partially applied update.
//
// The zero value is an empty registry. A nil *Registry resolves nothing.
type Registry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[bindings]
}

// New creates an empty registry.
func New() *Registry {
	r := &Registry{}
	empty := bindings{}
	r.snapshot.Store(&empty)
	return r
}

// Register binds impl to the capability type T, replacing any previous binding.
// T must be an interface type and impl must not be nil.
//
// Example usage:
//
//	reg := registry.New()
//	err := registry.Register[driven.ConfigurationPort](reg, file.NewLoader(path))
func Register[T any](r *Registry, impl T) error {
	if r == nil {
		return fmt.Errorf("%w: nil registry", domain.ErrInvalidInput)
	}
	t, err := capabilityType[T]()
	if err != nil {
		return err
	}
	if isNil(impl) {
		return fmt.Errorf("%w: nil implementation for %s", domain.ErrInvalidInput, t)
	}
	r.update(func(b bindings) { b[t] = impl })
	return nil
}

// Unregister removes the binding for T. It reports whether a binding existed.
func Unregister[T any](r *Registry) bool {
	if r == nil {
		return false
	}
	t := reflect.TypeFor[T]()
	var existed bool
	r.update(func(b bindings) {
		_, existed = b[t]
		delete(b, t)
	})
	return existed
}

// Resolve returns the implementation bound to T.
// It fails with a *domain.PortNotConfiguredError when nothing is bound.
func Resolve[T any](r *Registry) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()
	impl, ok := r.load()[t]
	if !ok {
		return zero, &domain.PortNotConfiguredError{Port: t.String()}
	}
	return impl.(T), nil
}

// Has returns true if an implementation is bound to T.
func Has[T any](r *Registry) bool {
	_, ok := r.load()[reflect.TypeFor[T]()]
	return ok
}

// Ports returns the names of all bound capability types, sorted.
func (r *Registry) Ports() []string {
	b := r.load()
	names := make([]string, 0, len(b))
	for t := range b {
		names = append(names, t.String())
	}
	slices.Sort(names)
	return names
}

// load returns the current snapshot; nil and zero-value registries are empty.
func (r *Registry) load() bindings {
	if r == nil {
		return nil
	}
	b := r.snapshot.Load()
	if b == nil {
		return nil
	}
	return *b
}

// update applies fn to a private copy of the current table and publishes it.
func (r *Registry) update(fn func(bindings)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.load())
	if next == nil {
		next = bindings{}
	}
	fn(next)
	r.snapshot.Store(&next)
}

func capabilityType[T any]() (reflect.Type, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%w: capability type %s is not an interface", domain.ErrInvalidInput, t)
	}
	return t, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
