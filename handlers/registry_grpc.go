package handlers

import (
	"context"
	"net"

	"myrendezvous/helpers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Registry service method names.
const (
	RegistryLookup = "Lookup"
	RegistryList   = "List"
	RegistryBind   = "Bind"
	RegistryRebind = "Rebind"
	RegistryUnbind = "Unbind"
)

// registryServer serves myrendezvous.v1.Registry. Lookups are open to everyone,
// changes are accepted from loopback peers only.
type registryServer struct {
	registry interfaces.Registry
	logger   log.Logger
}

func newRegistryServer(registry interfaces.Registry, logger log.Logger) *registryServer {
	return &registryServer{
		registry: helpers.NilPanic(registry, "handlers.registry_grpc.go: registry is required"),
		logger:   log.With(helpers.NilPanic(logger, "handlers.registry_grpc.go: logger is required"), "component", "RegistryGRPC"),
	}
}

// NewRegistryHandler returns the stream handler to mount as the registry service.
func NewRegistryHandler(registry interfaces.Registry, logger log.Logger) grpc.StreamHandler {
	s := newRegistryServer(registry, logger)
	return serveMethods(map[string]method{
		RegistryLookup: unary(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }, s.Lookup),
		RegistryList:   unary(func() *emptypb.Empty { return &emptypb.Empty{} }, s.List),
		RegistryBind:   unary(func() *structpb.Struct { return &structpb.Struct{} }, s.Bind),
		RegistryRebind: unary(func() *structpb.Struct { return &structpb.Struct{} }, s.Rebind),
		RegistryUnbind: unary(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }, s.Unbind),
	})
}

func (s *registryServer) Lookup(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, service.NewBadParameterError("name is required", nil)
	}
	b, err := s.registry.Lookup(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return ToBindingStruct(b), nil
}

func (s *registryServer) List(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	bindings, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	return toBindingList(bindings), nil
}

func (s *registryServer) Bind(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := requireLoopback(ctx); err != nil {
		return nil, err
	}
	b, err := FromBindingStruct(req)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Bind(ctx, b); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "Name bound", "name", b.Name, "addr", b.Address)
	return &emptypb.Empty{}, nil
}

func (s *registryServer) Rebind(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := requireLoopback(ctx); err != nil {
		return nil, err
	}
	b, err := FromBindingStruct(req)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Rebind(ctx, b); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "Name rebound", "name", b.Name, "addr", b.Address)
	return &emptypb.Empty{}, nil
}

func (s *registryServer) Unbind(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := requireLoopback(ctx); err != nil {
		return nil, err
	}
	if err := s.registry.Unbind(ctx, req.GetValue()); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "Name unbound", "name", req.GetValue())
	return &emptypb.Empty{}, nil
}

// requireLoopback fails with access_denied unless the caller connected from a loopback address.
func requireLoopback(ctx context.Context) error {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return service.NewAccessDeniedError("registry changes are only accepted from the local host", nil)
	}
	if !isLoopback(p.Addr.String()) {
		return service.NewAccessDeniedError("registry changes are only accepted from the local host", nil)
	}
	return nil
}

func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
