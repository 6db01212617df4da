package bridge

import (
	"fmt"
	"sort"
)

// Registry maps command names to handlers. It is populated once during
// bootstrap, before any dispatch, and immutable afterwards; it is not
// safe for concurrent registration.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a name to a handler. Registering a name twice fails
// with ErrDuplicateCommand and leaves the first handler in place.
func (r *Registry) Register(name string, h Handler) error {
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.handlers[name] = h
	return nil
}

// Resolve returns the handler registered under name, or
// ErrUnknownCommand when no handler matches.
func (r *Registry) Resolve(name string) (Handler, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return h, nil
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
