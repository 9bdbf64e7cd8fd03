// Package agent makes the management interface of a process reachable through one TCP port:
// the registry and the connector share the port, and the service URL tells clients how to
// get from one to the other.
package agent

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"myrendezvous/adapters/registryclient"
	"myrendezvous/domain"
	"myrendezvous/handlers"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
)

// Rendezvous activates the agent. Collaborators default to the real implementations and can
// be replaced with options.
type Rendezvous struct {
	logger    log.Logger
	binder    interfaces.RegistryBinder
	factory   interfaces.ExportServiceFactory
	lookup    service.HostnameFunc
	publisher interfaces.AddressPublisher
	now       func() time.Time
	restView  bool

	mu    sync.Mutex
	stage Stage
}

// Option configures a Rendezvous.
type Option func(*Rendezvous)

// WithRegistryBinder replaces the registry service binder.
func WithRegistryBinder(b interfaces.RegistryBinder) Option {
	return func(r *Rendezvous) { r.binder = b }
}

// WithExportServiceFactory replaces the connector factory. The factory then owns the
// random-identifier decision and AgentConfig.RandomIDs is not consulted.
func WithExportServiceFactory(f interfaces.ExportServiceFactory) Option {
	return func(r *Rendezvous) { r.factory = f }
}

// WithHostnameLookup replaces local host name resolution.
func WithHostnameLookup(lookup service.HostnameFunc) Option {
	return func(r *Rendezvous) { r.lookup = lookup }
}

// WithPublisher advertises the service URL once the agent is reachable.
func WithPublisher(p interfaces.AddressPublisher) Option {
	return func(r *Rendezvous) { r.publisher = p }
}

// WithClock replaces the clock used for registry binding timestamps and publications.
func WithClock(now func() time.Time) Option {
	return func(r *Rendezvous) { r.now = now }
}

// WithoutRESTView leaves plain HTTP requests on the shared port unanswered (404).
func WithoutRESTView() Option {
	return func(r *Rendezvous) { r.restView = false }
}

// New returns a Rendezvous. logger is required.
func New(logger log.Logger, opts ...Option) *Rendezvous {
	r := &Rendezvous{
		logger:   log.With(helpers.NilPanic(logger, "agent.rendezvous.go: logger is required"), "component", "rendezvous"),
		lookup:   service.LocalHostname,
		now:      func() time.Time { return time.Now().UTC() },
		restView: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.binder == nil {
		r.binder = service.NewRegistryServiceBinder(func(registry interfaces.Registry) grpc.StreamHandler {
			return handlers.NewRegistryHandler(registry, logger)
		}, logger)
	}
	return r
}

// metricsSource is implemented by providers that can serve their metrics over HTTP.
type metricsSource interface {
	MetricsHandler() http.Handler
}

// Activate runs the rendezvous: resolve port and hostname, start the registry, compose the
// service address, create and start the connector. It returns once both are listening.
//
// Parameters: ctx — bounds the registry calls made while starting; agentArgs — opaque startup
// arguments, logged only; cfg — overrides and capability map; provider — what the connector exposes.
//
// Returns: (*Agent, nil) on success; bad_parameter for a nil provider; configuration_error for a malformed
// port override; host_resolution_error when no hostname can be determined; bind_error when the registry
// or the connector can't be started. On failure after the registry is listening, the registry is closed again.
func (r *Rendezvous) Activate(ctx context.Context, agentArgs string, cfg domain.AgentConfig, provider interfaces.Provider) (*Agent, error) {
	if provider == nil {
		return nil, service.NewBadParameterError("management data provider is required", nil)
	}

	a := &Agent{logger: r.logger}
	r.setStage(Unstarted)
	level.Info(r.logger).Log("msg", "Activating", "stage", r.Stage(), "agent_args", agentArgs)

	fail := func(err error) (*Agent, error) {
		level.Error(r.logger).Log("msg", "Activation failed", "stage", r.Stage(), "err", err)
		if a.registry != nil {
			if closeErr := a.registry.Close(); closeErr != nil {
				level.Error(r.logger).Log("msg", "Failed to close registry", "err", closeErr)
			}
			a.registry = nil
		}
		r.setStage(Failed)
		return nil, err
	}

	port, err := service.ResolvePort(cfg.PortOverride)
	if err != nil {
		return fail(err)
	}
	r.setStage(PortResolved)
	level.Info(r.logger).Log("msg", "Port resolved", "stage", r.Stage(), "port", port.Port)

	hostname, err := service.ResolveHostname(cfg.HostnameOverride, r.lookup)
	if err != nil {
		return fail(err)
	}
	if err := checkAddressable(hostname.Hostname, port.Port); err != nil {
		return fail(err)
	}
	r.setStage(HostnameResolved)
	level.Info(r.logger).Log("msg", "Hostname resolved", "stage", r.Stage(), "hostname", hostname.Hostname)

	registry, err := r.binder.Bind(ctx, port.Port)
	if err != nil {
		if !service.IsBind(err) {
			err = service.NewBindError("can't start registry", err)
		}
		return fail(err)
	}
	a.registry = registry
	r.setStage(RegistryListening)
	level.Info(r.logger).Log("msg", "Registry listening", "stage", r.Stage(), "port", registry.Port())

	a.address = domain.NewServiceAddress(hostname.Hostname, port.Port)
	r.setStage(AddressComposed)
	level.Info(r.logger).Log("msg", "Service address composed", "stage", r.Stage(), "service_url", a.address.String())

	factory := r.factory
	if factory == nil {
		factory = r.defaultFactory(cfg.RandomIDs)
	}
	exportService, err := factory.Create(a.address, cfg.Environment, provider)
	if err != nil {
		return fail(err)
	}
	if err := exportService.Start(ctx); err != nil {
		if !service.IsBind(err) {
			err = service.NewBindError("can't start export service", err)
		}
		return fail(err)
	}
	a.export = exportService
	a.stage = ExportServiceListening
	r.setStage(ExportServiceListening)
	level.Info(r.logger).Log("msg", "Export service listening", "stage", r.Stage(), "service_url", a.address.String())

	if r.restView {
		r.mountRESTView(a, provider)
	}
	if r.publisher != nil {
		r.publish(ctx, a, cfg.PublishTTL)
	}
	return a, nil
}

// checkAddressable fails when hostname can't be carried through the service URL and parsed back.
func checkAddressable(hostname string, port int) error {
	address := domain.NewServiceAddress(hostname, port)
	parsed, err := domain.ParseServiceAddress(address.String())
	if err != nil {
		return service.NewConfigurationError(fmt.Sprintf("hostname %q can't be used in a service address", hostname), err)
	}
	if parsed != address {
		return service.NewConfigurationError(fmt.Sprintf("hostname %q does not survive the service address", hostname), nil)
	}
	return nil
}

func (r *Rendezvous) setStage(s Stage) {
	r.mu.Lock()
	r.stage = s
	r.mu.Unlock()
}

// Stage is the stage the latest Activate call on r reached, Failed when it aborted. A failed
// second call reports Failed even while the agent from an earlier call is live; use Agent.Stage
// for a running agent.
func (r *Rendezvous) Stage() Stage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage
}

func (r *Rendezvous) defaultFactory(randomIDs bool) interfaces.ExportServiceFactory {
	endpoints, ok := r.binder.(interfaces.EndpointSet)
	if !ok {
		endpoints = noEndpoints{}
	}
	local, _ := r.binder.(localRegistries)
	locator := localFirstLocator{local: local, remote: registryclient.Locator{}}
	logger := r.logger
	return service.NewConnectorFactory(endpoints, locator, randomIDs,
		func(exportID string, p interfaces.Provider) grpc.StreamHandler {
			return handlers.NewConnectorHandler(exportID, p, logger)
		},
		r.now, logger)
}

// mountRESTView serves the REST view on the registry's port. Failures are logged only.
func (r *Rendezvous) mountRESTView(a *Agent, provider interfaces.Provider) {
	endpoint := a.registry.Endpoint()
	if endpoint == nil {
		return
	}
	var metrics http.Handler
	if m, ok := provider.(metricsSource); ok {
		metrics = m.MetricsHandler()
	}
	e, err := handlers.NewEcho(handlers.NewHTTPServer(a.address, a.registry.Registry(), provider, r.logger), metrics, r.logger)
	if err != nil {
		level.Error(r.logger).Log("msg", "REST view unavailable", "err", err)
		return
	}
	endpoint.SetHTTPHandler(e)
}

// publish advertises the service URL. Failures are logged only: the agent is reachable either way.
func (r *Rendezvous) publish(ctx context.Context, a *Agent, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultPublishTTL
	}
	pub := domain.Publication{
		ServiceURL:  a.address.String(),
		Hostname:    a.address.Export.Host,
		Port:        a.address.Export.Port,
		PublishedAt: r.now(),
	}
	if err := r.publisher.Publish(ctx, pub, ttl); err != nil {
		level.Warn(r.logger).Log("msg", "Failed to publish service address", "err", err)
		return
	}
	a.publisher = r.publisher
}

// DefaultPublishTTL is used when AgentConfig.PublishTTL is not set.
const DefaultPublishTTL = 30 * time.Second

// Agent is an activated rendezvous.
type Agent struct {
	logger    log.Logger
	address   domain.ServiceAddress
	registry  interfaces.RegistryHandle
	export    interfaces.ExportService
	publisher interfaces.AddressPublisher

	stage     Stage
	closeOnce sync.Once
	closeErr  error
}

// Stage is ExportServiceListening for an activated agent.
func (a *Agent) Stage() Stage { return a.stage }

// Address is the service URL clients connect with.
func (a *Agent) Address() domain.ServiceAddress { return a.address }

// Registry is the registry served on the agent's port.
func (a *Agent) Registry() interfaces.Registry { return a.registry.Registry() }

// ExportID is the identity of the live export.
func (a *Agent) ExportID() string { return a.export.ExportID() }

// Close withdraws the publication, stops the connector and closes the registry, in that order.
// Every step runs; the errors are combined.
func (a *Agent) Close(ctx context.Context) error {
	a.closeOnce.Do(func() {
		var err error
		if a.publisher != nil {
			err = multierr.Append(err, a.publisher.Withdraw(ctx))
		}
		err = multierr.Append(err, a.export.Stop(ctx))
		err = multierr.Append(err, a.registry.Close())
		a.closeErr = err
		level.Info(a.logger).Log("msg", "Agent closed", "err", err)
	})
	return a.closeErr
}
