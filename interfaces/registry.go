package interfaces

import (
	"context"

	"myrendezvous/domain"
)

// Registry maps names to export bindings. Implemented by the in-memory name table
// (service) and by the remote registry client (adapters/registryclient).
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Bind adds a binding. Returns bind_error when the name is already bound.
	Bind(ctx context.Context, binding domain.Binding) error
	// Rebind adds or replaces a binding.
	Rebind(ctx context.Context, binding domain.Binding) error
	// Unbind removes a binding. Returns entity_not_found when the name is not bound.
	Unbind(ctx context.Context, name string) error
	// Lookup returns the binding for name or entity_not_found.
	Lookup(ctx context.Context, name string) (domain.Binding, error)
	// List returns all bindings ordered by name.
	List(ctx context.Context) ([]domain.Binding, error)
}

// RegistryHandle is a running registry service bound to one port.
//
//go:generate moq -stub -out mock/registry_handle.go -pkg mock . RegistryHandle
type RegistryHandle interface {
	Registry() Registry
	Endpoint() Endpoint
	Port() int
	// Close stops the registry service and releases its port.
	Close() error
}

// RegistryBinder starts a registry service on a port.
//
//go:generate moq -stub -out mock/registry_binder.go -pkg mock . RegistryBinder
type RegistryBinder interface {
	// Bind returns bind_error when the port cannot be listened on.
	Bind(ctx context.Context, port int) (RegistryHandle, error)
}

// RegistryLocator finds the registry reachable at a locator: the in-process table when this
// process owns the port, a remote client otherwise. Returned values that implement io.Closer
// must be closed by the caller.
type RegistryLocator interface {
	Locate(ctx context.Context, loc domain.Locator) (Registry, error)
}
