package handlers

import (
	"context"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Connector service method names.
const (
	ConnectorListAttributes = "ListAttributes"
	ConnectorGetAttribute   = "GetAttribute"
	ConnectorSetAttribute   = "SetAttribute"
	ConnectorListOperations = "ListOperations"
	ConnectorInvoke         = "Invoke"
)

// connectorServer serves myrendezvous.v1.Connector for one export of a provider.
type connectorServer struct {
	exportID string
	provider interfaces.Provider
	logger   log.Logger
}

// NewConnectorHandler returns the stream handler to mount as the connector service.
// Calls whose x-export-id metadata doesn't match exportID fail with entity_not_found.
func NewConnectorHandler(exportID string, provider interfaces.Provider, logger log.Logger) grpc.StreamHandler {
	s := &connectorServer{
		exportID: helpers.StrPanic(exportID, "handlers.connector_grpc.go: exportID is required"),
		provider: helpers.NilPanic(provider, "handlers.connector_grpc.go: provider is required"),
		logger:   log.With(helpers.NilPanic(logger, "handlers.connector_grpc.go: logger is required"), "component", "ConnectorGRPC"),
	}
	serve := serveMethods(map[string]method{
		ConnectorListAttributes: unary(func() *emptypb.Empty { return &emptypb.Empty{} }, s.ListAttributes),
		ConnectorGetAttribute:   unary(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }, s.GetAttribute),
		ConnectorSetAttribute:   unary(func() *structpb.Struct { return &structpb.Struct{} }, s.SetAttribute),
		ConnectorListOperations: unary(func() *emptypb.Empty { return &emptypb.Empty{} }, s.ListOperations),
		ConnectorInvoke:         unary(func() *structpb.Struct { return &structpb.Struct{} }, s.Invoke),
	})
	return func(srv any, stream grpc.ServerStream) error {
		if err := s.checkExportID(stream.Context()); err != nil {
			return err
		}
		return serve(srv, stream)
	}
}

func (s *connectorServer) checkExportID(ctx context.Context) error {
	md, _ := metadata.FromIncomingContext(ctx)
	ids := md.Get(domain.ExportIDHeader)
	if len(ids) != 1 || ids[0] != s.exportID {
		return service.NewEntityNotFoundError("no such object in table", nil)
	}
	return nil
}

func (s *connectorServer) ListAttributes(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	attributes, err := s.provider.Attributes(ctx)
	if err != nil {
		return nil, err
	}
	return toAttributeList(attributes)
}

func (s *connectorServer) GetAttribute(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	a, err := s.provider.Attribute(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return ToAttributeStruct(a)
}

func (s *connectorServer) SetAttribute(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	fields := req.GetFields()
	name := fields["name"].GetStringValue()
	if name == "" {
		return nil, service.NewBadParameterError("attribute name is required", nil)
	}
	value := fields["value"].AsInterface()
	if err := s.provider.SetAttribute(ctx, name, value); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "Attribute set", "name", name, "value", value)
	return &emptypb.Empty{}, nil
}

func (s *connectorServer) ListOperations(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	operations, err := s.provider.Operations(ctx)
	if err != nil {
		return nil, err
	}
	return toOperationList(operations), nil
}

func (s *connectorServer) Invoke(ctx context.Context, req *structpb.Struct) (*structpb.Value, error) {
	name, args := fromInvokeRequest(req)
	if name == "" {
		return nil, service.NewBadParameterError("operation name is required", nil)
	}
	result, err := s.provider.Invoke(ctx, name, args)
	if err != nil {
		return nil, err
	}
	level.Debug(s.logger).Log("msg", "Operation invoked", "name", name)
	return ToValue(result)
}
