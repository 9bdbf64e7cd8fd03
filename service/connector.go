package service

import (
	"context"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
)

// ConnectorHandlerFunc builds the gRPC handler serving provider under exportID.
type ConnectorHandlerFunc func(exportID string, provider interfaces.Provider) grpc.StreamHandler

// ConnectorFactory creates connectors that share endpoints with registries of the same process.
type ConnectorFactory struct {
	endpoints  interfaces.EndpointSet
	registries interfaces.RegistryLocator
	nextID     IDGenerator
	newHandler ConnectorHandlerFunc
	now        func() time.Time
	logger     log.Logger
}

var _ interfaces.ExportServiceFactory = (*ConnectorFactory)(nil)

// NewConnectorFactory creates the export-service factory.
//
// Parameters: endpoints — endpoints already open in this process (the registry binder); registries — finds the
// registry at a lookup locator; randomIDs — UUID export identities instead of a counter; newHandler — builds the
// connector RPC handler; now — clock for BoundAt; logger — logger.
//
// Called from agent.New when wiring the default collaborators.
func NewConnectorFactory(
	endpoints interfaces.EndpointSet,
	registries interfaces.RegistryLocator,
	randomIDs bool,
	newHandler ConnectorHandlerFunc,
	now func() time.Time,
	logger log.Logger,
) *ConnectorFactory {
	return &ConnectorFactory{
		endpoints:  helpers.NilPanic(endpoints, "service.connector.go: endpoints is required"),
		registries: helpers.NilPanic(registries, "service.connector.go: registries is required"),
		nextID:     NewIDGenerator(randomIDs),
		newHandler: helpers.NilPanic(newHandler, "service.connector.go: newHandler is required"),
		now:        helpers.NilPanic(now, "service.connector.go: now is required"),
		logger:     log.With(helpers.NilPanic(logger, "service.connector.go: logger is required"), "component", "connector"),
	}
}

// Create validates the inputs and returns an inactive connector.
// Returns bad_parameter for a nil provider or an address without a name.
func (f *ConnectorFactory) Create(address domain.ServiceAddress, env domain.Environment, provider interfaces.Provider) (interfaces.ExportService, error) {
	if provider == nil {
		return nil, NewBadParameterError("provider is required", nil)
	}
	if address.Name == "" {
		return nil, NewBadParameterError("service address has no name", nil)
	}

	c := &Connector{
		factory:  f,
		address:  address,
		provider: provider,
		logger:   log.With(f.logger, "service_url", address.String()),
	}
	for key, value := range env {
		switch key {
		case domain.EnvRegistryRebind:
			c.rebind = strings.EqualFold(strings.TrimSpace(value), "true")
		default:
			level.Warn(c.logger).Log("msg", "Ignoring unknown capability key", "key", key)
		}
	}
	return c, nil
}

// Connector is the export service: it mounts the connector RPCs on the export port and
// registers their live address in the registry at the lookup locator.
type Connector struct {
	factory  *ConnectorFactory
	address  domain.ServiceAddress
	provider interfaces.Provider
	rebind   bool
	logger   log.Logger

	mu       sync.Mutex
	active   bool
	exportID string
	endpoint interfaces.Endpoint
	owned    bool
}

var _ interfaces.ExportService = (*Connector)(nil)

func (c *Connector) Address() domain.ServiceAddress { return c.address }

// ExportID returns the identity of the live export, or "" while inactive.
func (c *Connector) ExportID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exportID
}

func (c *Connector) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Start exports the provider and binds its live address under the address name.
// Every failure is reported as bind_error and leaves nothing mounted or registered.
func (c *Connector) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return NewBindError("connector already active", nil)
	}

	endpoint, shared := c.factory.endpoints.Lookup(c.address.Export.Port)
	owned := !shared
	if owned {
		opened, err := Listen(c.address.Export.Port, c.factory.logger)
		if err != nil {
			return err
		}
		endpoint = opened
	}

	undo := func() {
		endpoint.Unmount(domain.ConnectorService)
		if owned {
			_ = endpoint.Close()
		}
	}

	exportID := c.factory.nextID()
	if err := endpoint.Mount(domain.ConnectorService, c.factory.newHandler(exportID, c.provider)); err != nil {
		if owned {
			_ = endpoint.Close()
		}
		return NewBindError("can't mount connector", err)
	}

	binding := domain.Binding{
		Name:     c.address.Name,
		Address:  net.JoinHostPort(c.address.Export.Host, strconv.Itoa(endpoint.Port())),
		ExportID: exportID,
		BoundAt:  c.factory.now(),
	}
	if err := c.register(ctx, binding); err != nil {
		undo()
		return NewBindError("can't register connector under "+c.address.Name, err)
	}

	c.active = true
	c.exportID = exportID
	c.endpoint = endpoint
	c.owned = owned
	level.Info(c.logger).Log("msg", "Connector active", "name", binding.Name, "addr", binding.Address, "export_id", exportID)
	return nil
}

func (c *Connector) register(ctx context.Context, binding domain.Binding) (err error) {
	registry, err := c.factory.registries.Locate(ctx, c.address.Lookup)
	if err != nil {
		return err
	}
	if closer, ok := registry.(io.Closer); ok {
		defer func() { err = multierr.Append(err, closer.Close()) }()
	}
	if c.rebind {
		return registry.Rebind(ctx, binding)
	}
	return registry.Bind(ctx, binding)
}

func (c *Connector) unregister(ctx context.Context) (err error) {
	registry, err := c.factory.registries.Locate(ctx, c.address.Lookup)
	if err != nil {
		return err
	}
	if closer, ok := registry.(io.Closer); ok {
		defer func() { err = multierr.Append(err, closer.Close()) }()
	}
	if err := registry.Unbind(ctx, c.address.Name); err != nil && !IsEntityNotFound(err) {
		return err
	}
	return nil
}

// Stop unbinds the name, unmounts the connector and closes an endpoint it opened itself.
// Stopping an inactive connector does nothing.
func (c *Connector) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return nil
	}

	err := c.unregister(ctx)
	c.endpoint.Unmount(domain.ConnectorService)
	if c.owned {
		err = multierr.Append(err, c.endpoint.Close())
	}

	c.active = false
	c.exportID = ""
	c.endpoint = nil
	c.owned = false
	level.Info(c.logger).Log("msg", "Connector stopped", "err", err)
	return err
}
