package service

import (
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// agentErrorCodeToGRPCCode maps AgentError codes to gRPC status codes.
func agentErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case ErrBadParameter, ErrConfiguration:
		return codes.InvalidArgument
	case ErrEntityNotFound:
		return codes.NotFound
	case ErrBind:
		return codes.AlreadyExists
	case ErrAccessDenied:
		return codes.PermissionDenied
	case ErrHostResolution:
		return codes.FailedPrecondition
	case ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// grpcCodeToAgentErrorCode is the client-side inverse of agentErrorCodeToGRPCCode.
func grpcCodeToAgentErrorCode(code codes.Code) string {
	switch code {
	case codes.InvalidArgument:
		return ErrBadParameter
	case codes.NotFound:
		return ErrEntityNotFound
	case codes.AlreadyExists:
		return ErrBind
	case codes.PermissionDenied:
		return ErrAccessDenied
	case codes.FailedPrecondition:
		return ErrHostResolution
	default:
		return ErrInternalServerError
	}
}

// AgentErrorToGRPC converts an error to a gRPC status error. AgentError is mapped to the
// corresponding gRPC code and message; other errors become codes.Unknown with "internal error".
func AgentErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var agentErr AgentError
	if errors.As(err, &agentErr) {
		return status.Error(agentErrorCodeToGRPCCode(agentErr.Code), agentErr.Message)
	}
	if s, ok := status.FromError(err); ok {
		return s.Err()
	}
	return status.Error(codes.Unknown, "internal error")
}

// GRPCToAgentError turns a status error received by a client back into an AgentError.
// Errors that carry no status are wrapped as internal errors.
func GRPCToAgentError(err error) error {
	if err == nil {
		return nil
	}
	s, ok := status.FromError(err)
	if !ok {
		return NewInternalServerError("rpc failed", err)
	}
	return AgentError{Code: grpcCodeToAgentErrorCode(s.Code()), Message: s.Message(), Inner: err}
}

// AgentErrorToGRPCStreamInterceptor returns a stream server interceptor that converts handler
// errors to gRPC status errors and logs them. Registry and connector calls are dispatched
// through the unknown-service handler, so every RPC on the shared port passes through here.
func AgentErrorToGRPCStreamInterceptor(logger log.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err != nil {
			var agentErr AgentError
			if errors.As(err, &agentErr) {
				level.Info(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"error_code", agentErr.Code,
					"error_message", agentErr.Message,
					"error", err,
				)
			} else {
				level.Error(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"err", err,
				)
			}
			err = AgentErrorToGRPC(err)
		}
		return err
	}
}
