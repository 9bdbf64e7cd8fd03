package service

import (
	"context"
	"fmt"
	"sync"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
)

// RegistryHandlerFunc builds the gRPC handler that serves a registry.
type RegistryHandlerFunc func(registry interfaces.Registry) grpc.StreamHandler

// RegistryServiceBinder starts registry services on shared endpoints and keeps track of the
// endpoints it opened, so a connector in the same process can share the registry's port.
type RegistryServiceBinder struct {
	newHandler RegistryHandlerFunc
	logger     log.Logger

	mu      sync.Mutex
	handles map[int]*registryHandle
}

var (
	_ interfaces.RegistryBinder = (*RegistryServiceBinder)(nil)
	_ interfaces.EndpointSet    = (*RegistryServiceBinder)(nil)
)

func NewRegistryServiceBinder(newHandler RegistryHandlerFunc, logger log.Logger) *RegistryServiceBinder {
	return &RegistryServiceBinder{
		newHandler: helpers.NilPanic(newHandler, "service.binder.go: newHandler is required"),
		logger:     log.With(helpers.NilPanic(logger, "service.binder.go: logger is required"), "component", "registry"),
		handles:    make(map[int]*registryHandle),
	}
}

// Bind opens a shared endpoint on port with a fresh name table mounted as the registry service.
//
// Returns: (handle, nil) when the registry is listening; (nil, bind_error) when this process already
// runs a registry on port, or the port is taken by another process.
func (b *RegistryServiceBinder) Bind(_ context.Context, port int) (interfaces.RegistryHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.handles[port]; ok && port != 0 {
		return nil, NewBindError(fmt.Sprintf("registry already listening on port %d", port), nil)
	}

	endpoint, err := Listen(port, b.logger)
	if err != nil {
		return nil, err
	}

	table := NewNameTable()
	if err := endpoint.Mount(domain.RegistryService, b.newHandler(table)); err != nil {
		_ = endpoint.Close()
		return nil, NewBindError("can't mount registry service", err)
	}

	h := &registryHandle{binder: b, table: table, endpoint: endpoint}
	b.handles[endpoint.Port()] = h
	level.Info(b.logger).Log("msg", "Registry listening", "port", endpoint.Port())
	return h, nil
}

// Lookup returns the endpoint of a registry started by this binder on port.
func (b *RegistryServiceBinder) Lookup(port int) (interfaces.Endpoint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	h, ok := b.handles[port]
	if !ok {
		return nil, false
	}
	return h.endpoint, true
}

// LocalRegistry returns the name table of a registry started by this binder on port.
func (b *RegistryServiceBinder) LocalRegistry(port int) (interfaces.Registry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	h, ok := b.handles[port]
	if !ok {
		return nil, false
	}
	return h.table, true
}

func (b *RegistryServiceBinder) release(h *registryHandle) {
	b.mu.Lock()
	if b.handles[h.Port()] == h {
		delete(b.handles, h.Port())
	}
	b.mu.Unlock()
}

type registryHandle struct {
	binder   *RegistryServiceBinder
	table    *NameTable
	endpoint *SharedEndpoint
	once     sync.Once
}

func (h *registryHandle) Registry() interfaces.Registry { return h.table }
func (h *registryHandle) Endpoint() interfaces.Endpoint { return h.endpoint }
func (h *registryHandle) Port() int                     { return h.endpoint.Port() }

func (h *registryHandle) Close() error {
	var err error
	h.once.Do(func() {
		h.binder.release(h)
		h.endpoint.Unmount(domain.RegistryService)
		err = h.endpoint.Close()
		level.Info(h.binder.logger).Log("msg", "Registry stopped", "port", h.Port())
	})
	return err
}
