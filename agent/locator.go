package agent

import (
	"context"

	"myrendezvous/domain"
	"myrendezvous/interfaces"
)

// localRegistries gives access to registries served by this process.
type localRegistries interface {
	LocalRegistry(port int) (interfaces.Registry, bool)
}

// localFirstLocator returns the in-process name table when this process serves the registry
// port, and a remote client otherwise.
type localFirstLocator struct {
	local  localRegistries
	remote interfaces.RegistryLocator
}

func (l localFirstLocator) Locate(ctx context.Context, loc domain.Locator) (interfaces.Registry, error) {
	if l.local != nil {
		if r, ok := l.local.LocalRegistry(loc.Port); ok {
			return r, nil
		}
	}
	return l.remote.Locate(ctx, loc)
}

// noEndpoints is the endpoint set of a binder that doesn't share its ports.
type noEndpoints struct{}

func (noEndpoints) Lookup(int) (interfaces.Endpoint, bool) { return nil, false }
