package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigurationError(t *testing.T) {
	inner := errors.New("cause")
	e := NewConfigurationError("invalid port", inner)
	assert.Equal(t, ErrConfiguration, e.Code)
	assert.Equal(t, "invalid port", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewHostResolutionError(t *testing.T) {
	e := NewHostResolutionError("no hostname", nil)
	assert.Equal(t, ErrHostResolution, e.Code)
	assert.Nil(t, e.Inner)
}

func TestNewBindError(t *testing.T) {
	e := NewBindError("port in use", nil)
	assert.Equal(t, ErrBind, e.Code)
	assert.Equal(t, "port in use", e.Message)
}

func TestAgentError_Error(t *testing.T) {
	e := AgentError{Code: "x", Message: "msg"}
	assert.Equal(t, "x: msg", e.Error())
}

func TestAgentError_Error_WithInner(t *testing.T) {
	e := AgentError{Code: "x", Message: "msg", Inner: errors.New("cause")}
	assert.Equal(t, "x: msg: cause", e.Error())
}

func TestAgentError_Unwrap(t *testing.T) {
	inner := errors.New("cause")
	e := AgentError{Inner: inner}
	assert.Same(t, inner, e.Unwrap())
	assert.Nil(t, AgentError{}.Unwrap())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"configuration", NewConfigurationError("x", nil), IsConfiguration},
		{"host resolution", NewHostResolutionError("x", nil), IsHostResolution},
		{"bind", NewBindError("x", nil), IsBind},
		{"entity not found", NewEntityNotFoundError("x", nil), IsEntityNotFound},
		{"bad parameter", NewBadParameterError("x", nil), IsBadParameter},
		{"access denied", NewAccessDeniedError("x", nil), IsAccessDenied},
		{"internal", NewInternalServerError("x", nil), IsInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.is(tt.err))
			assert.True(t, tt.is(fmt.Errorf("wrapped: %w", tt.err)))
			assert.False(t, tt.is(errors.New("plain")))
		})
	}
	assert.False(t, IsBind(NewConfigurationError("x", nil)))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, ErrBind, ErrorCode(fmt.Errorf("ctx: %w", NewBindError("x", nil))))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
	assert.Equal(t, "", ErrorCode(nil))
}

func TestErrorsAs_AgentError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	var agentErr AgentError
	require.True(t, errors.As(e, &agentErr))
	assert.Equal(t, ErrBadParameter, agentErr.Code)
}
