package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAgentErrorToGRPC_Nil(t *testing.T) {
	assert.NoError(t, AgentErrorToGRPC(nil))
}

func TestAgentErrorToGRPC_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"bad parameter", NewBadParameterError("name is required", nil), codes.InvalidArgument},
		{"configuration", NewConfigurationError("invalid port", nil), codes.InvalidArgument},
		{"not found", NewEntityNotFoundError("name not bound", nil), codes.NotFound},
		{"bind", NewBindError("already bound", nil), codes.AlreadyExists},
		{"access denied", NewAccessDeniedError("not local", nil), codes.PermissionDenied},
		{"host resolution", NewHostResolutionError("no hostname", nil), codes.FailedPrecondition},
		{"internal", NewInternalServerError("boom", nil), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgentErrorToGRPC(tt.err)
			st, ok := status.FromError(got)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.err.(AgentError).Message, st.Message())
		})
	}
}

func TestAgentErrorToGRPC_StatusPassesThrough(t *testing.T) {
	got := AgentErrorToGRPC(status.Error(codes.Unimplemented, "method not mounted"))
	st, ok := status.FromError(got)
	require.True(t, ok)
	assert.Equal(t, codes.Unimplemented, st.Code())
}

func TestAgentErrorToGRPC_UnknownError(t *testing.T) {
	got := AgentErrorToGRPC(errors.New("any"))
	st, ok := status.FromError(got)
	require.True(t, ok)
	assert.Equal(t, codes.Unknown, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestGRPCToAgentError(t *testing.T) {
	assert.NoError(t, GRPCToAgentError(nil))

	err := GRPCToAgentError(status.Error(codes.NotFound, "name not bound"))
	assert.True(t, IsEntityNotFound(err))
	assert.Equal(t, "name not bound", err.(AgentError).Message)

	assert.True(t, IsBind(GRPCToAgentError(status.Error(codes.AlreadyExists, "x"))))
	assert.True(t, IsAccessDenied(GRPCToAgentError(status.Error(codes.PermissionDenied, "x"))))
	assert.True(t, IsInternalServerError(GRPCToAgentError(status.Error(codes.Unavailable, "x"))))
	assert.True(t, IsInternalServerError(GRPCToAgentError(errors.New("plain"))))
}

func TestGRPCToAgentError_RoundTrip(t *testing.T) {
	for _, e := range []AgentError{
		NewBadParameterError("a", nil),
		NewEntityNotFoundError("b", nil),
		NewBindError("c", nil),
		NewAccessDeniedError("d", nil),
		NewInternalServerError("e", nil),
	} {
		back := GRPCToAgentError(AgentErrorToGRPC(e))
		assert.Equal(t, e.Code, ErrorCode(back))
	}
}

type fakeServerStream struct {
	grpc.ServerStream
}

func (fakeServerStream) Context() context.Context { return context.Background() }

func TestAgentErrorToGRPCStreamInterceptor(t *testing.T) {
	interceptor := AgentErrorToGRPCStreamInterceptor(log.NewNopLogger())
	info := &grpc.StreamServerInfo{FullMethod: "/myrendezvous.v1.Registry/Lookup"}

	err := interceptor(nil, fakeServerStream{}, info, func(any, grpc.ServerStream) error {
		return NewEntityNotFoundError("name not bound", nil)
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	err = interceptor(nil, fakeServerStream{}, info, func(any, grpc.ServerStream) error {
		return errors.New("boom")
	})
	assert.Equal(t, codes.Unknown, status.Code(err))

	err = interceptor(nil, fakeServerStream{}, info, func(any, grpc.ServerStream) error { return nil })
	assert.NoError(t, err)
}
