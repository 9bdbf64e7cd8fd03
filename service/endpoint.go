package service

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"myrendezvous/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// SharedEndpoint is one TCP listener serving gRPC and plain HTTP side by side (h2c).
// gRPC services are mounted by name after the endpoint is already serving; every call to a
// mounted service goes through the unknown-service handler and is dispatched from there.
type SharedEndpoint struct {
	logger   log.Logger
	listener net.Listener
	grpc     *grpc.Server
	http     *http.Server
	health   *health.Server

	mu       sync.RWMutex
	services map[string]grpc.StreamHandler
	fallback http.Handler

	closeOnce sync.Once
	closeErr  error
	served    chan struct{}
}

var _ interfaces.Endpoint = (*SharedEndpoint)(nil)

// Listen opens the shared endpoint on all interfaces at port and starts serving.
//
// Parameters: port — TCP port (0 picks an ephemeral port, used by tests); logger — logger.
//
// Returns: (*SharedEndpoint, nil) once the listener is open; (nil, bind_error) when the port cannot be listened on.
//
// Called from RegistryServiceBinder.Bind and from Connector.Start when no endpoint of this process owns the export port.
func Listen(port int, logger log.Logger) (*SharedEndpoint, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, NewBindError(fmt.Sprintf("can't listen on port %d", port), err)
	}
	return Serve(lis, logger), nil
}

// Serve starts the shared endpoint on an already opened listener.
func Serve(lis net.Listener, logger log.Logger) *SharedEndpoint {
	e := &SharedEndpoint{
		logger:   log.With(logger, "component", "endpoint", "addr", lis.Addr().String()),
		listener: lis,
		services: make(map[string]grpc.StreamHandler),
		health:   health.NewServer(),
		served:   make(chan struct{}),
	}

	e.grpc = grpc.NewServer(
		grpc.UnknownServiceHandler(e.dispatch),
		grpc.ChainStreamInterceptor(AgentErrorToGRPCStreamInterceptor(e.logger)),
	)
	e.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(e.grpc, e.health)
	reflection.Register(e.grpc)

	e.http = &http.Server{
		Handler:           h2c.NewHandler(http.HandlerFunc(e.route), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(e.served)
		level.Debug(e.logger).Log("msg", "Shared endpoint serving")
		if err := e.http.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(e.logger).Log("msg", "Shared endpoint stopped", "err", err)
		}
	}()
	return e
}

// route sends gRPC requests to the gRPC server and the rest to the HTTP handler.
func (e *SharedEndpoint) route(w http.ResponseWriter, r *http.Request) {
	if r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc") {
		e.grpc.ServeHTTP(w, r)
		return
	}
	e.mu.RLock()
	fallback := e.fallback
	e.mu.RUnlock()
	if fallback == nil {
		http.NotFound(w, r)
		return
	}
	fallback.ServeHTTP(w, r)
}

func (e *SharedEndpoint) dispatch(srv any, stream grpc.ServerStream) error {
	fullMethod, ok := grpc.MethodFromServerStream(stream)
	if !ok {
		return status.Error(codes.Internal, "missing grpc method in stream context")
	}
	serviceName, _, ok := splitMethod(fullMethod)
	if !ok {
		return status.Errorf(codes.Unimplemented, "malformed method %q", fullMethod)
	}
	e.mu.RLock()
	handler, ok := e.services[serviceName]
	e.mu.RUnlock()
	if !ok {
		return status.Errorf(codes.Unimplemented, "unknown service %s", serviceName)
	}
	return handler(srv, stream)
}

// splitMethod splits "/pkg.Service/Method" into service and method.
func splitMethod(fullMethod string) (string, string, bool) {
	serviceName, method, ok := strings.Cut(strings.TrimPrefix(fullMethod, "/"), "/")
	if !ok || serviceName == "" || method == "" {
		return "", "", false
	}
	return serviceName, method, true
}

func (e *SharedEndpoint) Mount(service string, handler grpc.StreamHandler) error {
	if service == "" || handler == nil {
		return NewBadParameterError("service name and handler are required", nil)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.services[service]; ok {
		return NewBindError("service already mounted: "+service, nil)
	}
	e.services[service] = handler
	e.health.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
	level.Debug(e.logger).Log("msg", "Service mounted", "service", service)
	return nil
}

func (e *SharedEndpoint) Unmount(service string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.services[service]; !ok {
		return
	}
	delete(e.services, service)
	e.health.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	level.Debug(e.logger).Log("msg", "Service unmounted", "service", service)
}

func (e *SharedEndpoint) SetHTTPHandler(handler http.Handler) {
	e.mu.Lock()
	e.fallback = handler
	e.mu.Unlock()
}

// Port returns the port the listener is actually bound to.
func (e *SharedEndpoint) Port() int {
	if addr, ok := e.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Close stops the gRPC and HTTP servers and releases the port. Safe to call more than once.
func (e *SharedEndpoint) Close() error {
	e.closeOnce.Do(func() {
		e.health.Shutdown()
		e.grpc.Stop()
		e.closeErr = e.http.Close()
		<-e.served
		level.Debug(e.logger).Log("msg", "Shared endpoint closed")
	})
	return e.closeErr
}
