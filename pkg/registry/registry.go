package registry

import (
	"sync"

	"github.com/arthur-debert/confname/pkg/errors"
)

// Registry stores items by unique name and keeps them in a caller-controlled
// order. It is safe for concurrent use.
type Registry[T any] interface {
	// Register appends an item
	Register(name string, item T) error

	// RegisterAfter places an item right after another one. When after is
	// not registered the item is appended and placed reports false.
	RegisterAfter(name string, item T, after string) (placed bool, err error)

	// Index returns the position of name, or -1
	Index(name string) int

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names in order
	List() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkNew(name); err != nil {
		return err
	}
	r.items[name] = item
	r.order = append(r.order, name)
	return nil
}

func (r *registry[T]) RegisterAfter(name string, item T, after string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkNew(name); err != nil {
		return false, err
	}
	r.items[name] = item

	at := r.indexLocked(after)
	if at < 0 {
		r.order = append(r.order, name)
		return false, nil
	}
	r.order = append(r.order, "")
	copy(r.order[at+2:], r.order[at+1:])
	r.order[at+1] = name
	return true, nil
}

func (r *registry[T]) Index(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexLocked(name)
}

func (r *registry[T]) checkNew(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}
	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered", name)
	}
	return nil
}

func (r *registry[T]) indexLocked(name string) int {
	if _, exists := r.items[name]; !exists {
		return -1
	}
	for i, n := range r.order {
		if n == name {
			return i
		}
	}
	return -1
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%s' is not registered", name)
	}

	return item, nil
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "'%s' is not registered", name)
	}

	at := r.indexLocked(name)
	delete(r.items, name)
	r.order = append(r.order[:at], r.order[at+1:]...)
	return nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
	r.order = nil
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
