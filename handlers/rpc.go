// Package handlers contains the gRPC handlers of the registry and connector services and the
// HTTP (REST) view served next to them on the shared port.
//
// The gRPC services have no generated stubs: requests and responses are protobuf well-known
// types, and each service is a single grpc.StreamHandler mounted on the shared endpoint.
package handlers

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// method is one request/response RPC.
type method struct {
	newRequest func() proto.Message
	call       func(ctx context.Context, req proto.Message) (proto.Message, error)
}

func unary[Req, Resp proto.Message](newRequest func() Req, fn func(context.Context, Req) (Resp, error)) method {
	return method{
		newRequest: func() proto.Message { return newRequest() },
		call: func(ctx context.Context, req proto.Message) (proto.Message, error) {
			return fn(ctx, req.(Req))
		},
	}
}

// serveMethods returns a stream handler that serves each RPC of methods as a unary call
// (one request message, one response message).
func serveMethods(methods map[string]method) grpc.StreamHandler {
	return func(_ any, stream grpc.ServerStream) error {
		fullMethod, ok := grpc.MethodFromServerStream(stream)
		if !ok {
			return status.Error(codes.Internal, "missing grpc method in stream context")
		}
		name := fullMethod[strings.LastIndex(fullMethod, "/")+1:]
		m, ok := methods[name]
		if !ok {
			return status.Errorf(codes.Unimplemented, "unknown method %s", fullMethod)
		}

		req := m.newRequest()
		if err := stream.RecvMsg(req); err != nil {
			return err
		}
		resp, err := m.call(stream.Context(), req)
		if err != nil {
			return err
		}
		return stream.SendMsg(resp)
	}
}
