package service

import (
	"errors"
	"fmt"
)

const (
	ErrInternalServerError = "internal_server_error"
	ErrBadParameter        = "bad_parameter"
	ErrEntityNotFound      = "entity_not_found"
	ErrAccessDenied        = "access_denied"
	// ErrConfiguration means an override value could not be parsed.
	ErrConfiguration = "configuration_error"
	// ErrHostResolution means no hostname could be determined for the service address.
	ErrHostResolution = "host_resolution_error"
	// ErrBind means a port, a mount point or a registry name is already taken, or the listener failed.
	ErrBind = "bind_error"
)

// AgentError is the coded error returned by the registry, the connector and the rendezvous.
type AgentError struct {
	Code    string
	Message string
	Inner   error
}

func (e AgentError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e AgentError) Unwrap() error { return e.Inner }

// ErrorCode returns the code of the first AgentError in err's chain, or "".
func ErrorCode(err error) string {
	var e AgentError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func isCode(err error, code string) bool {
	var e AgentError
	return errors.As(err, &e) && e.Code == code
}

func NewConfigurationError(message string, inner error) AgentError {
	return AgentError{Code: ErrConfiguration, Message: message, Inner: inner}
}

func IsConfiguration(err error) bool { return isCode(err, ErrConfiguration) }

func NewHostResolutionError(message string, inner error) AgentError {
	return AgentError{Code: ErrHostResolution, Message: message, Inner: inner}
}

func IsHostResolution(err error) bool { return isCode(err, ErrHostResolution) }

func NewBindError(message string, inner error) AgentError {
	return AgentError{Code: ErrBind, Message: message, Inner: inner}
}

func IsBind(err error) bool { return isCode(err, ErrBind) }

func NewEntityNotFoundError(message string, inner error) AgentError {
	return AgentError{Code: ErrEntityNotFound, Message: message, Inner: inner}
}

func IsEntityNotFound(err error) bool { return isCode(err, ErrEntityNotFound) }

func NewBadParameterError(message string, inner error) AgentError {
	return AgentError{Code: ErrBadParameter, Message: message, Inner: inner}
}

func IsBadParameter(err error) bool { return isCode(err, ErrBadParameter) }

func NewAccessDeniedError(message string, inner error) AgentError {
	return AgentError{Code: ErrAccessDenied, Message: message, Inner: inner}
}

func IsAccessDenied(err error) bool { return isCode(err, ErrAccessDenied) }

func NewInternalServerError(message string, inner error) AgentError {
	return AgentError{Code: ErrInternalServerError, Message: message, Inner: inner}
}

func IsInternalServerError(err error) bool { return isCode(err, ErrInternalServerError) }
