package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrConfiguration] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrAccessDenied] = http.StatusForbidden
	errorCodeToStatusCodeMaps[ErrBind] = http.StatusConflict
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := ErrBody{Code: ErrInternalServerError, Message: "an internal server error has occurred"}
	var agentErr AgentError
	if errors.As(err, &agentErr) {
		body = ErrBody{Code: agentErr.Code, Message: agentErr.Message}
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) && !errors.As(err, &agentErr) {
		code := ErrInternalServerError
		switch {
		case he.Code == http.StatusNotFound:
			code = ErrEntityNotFound
		case he.Code == http.StatusMethodNotAllowed, he.Code == http.StatusBadRequest:
			code = ErrBadParameter
		}
		var requestError *openapi3filter.RequestError
		if he.Internal != nil && errors.As(he.Internal, &requestError) {
			code = ErrBadParameter
		}

		m, _ := he.Message.(string)
		body = ErrBody{Code: code, Message: m}
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(body.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
	} else {
		_ = c.JSON(statusCode, ErrResponse{Error: &body})
	}
}

// ErrBody is the public part of an AgentError.
type ErrBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ErrResponse from server.
type ErrResponse struct {
	Error *ErrBody `json:"error,omitempty"`
}
