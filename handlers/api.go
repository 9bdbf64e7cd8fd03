package handlers

import (
	"net/http"
	"strconv"

	"myrendezvous/service"

	"github.com/labstack/echo/v4"
)

// AddressResponse is the body of GET /v1/address.
type AddressResponse struct {
	ServiceURL string `json:"service_url"`
	Hostname   string `json:"hostname"`
	Port       int    `json:"port"`
}

// BindingInfo is one registry binding in REST responses.
type BindingInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	ExportID string `json:"export_id,omitempty"`
	BoundAt  string `json:"bound_at,omitempty"`
}

type BindingsResponse struct {
	Bindings []BindingInfo `json:"bindings"`
}

// AttributeInfo is one attribute in REST responses.
type AttributeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       any    `json:"value"`
	Writable    bool   `json:"writable"`
}

type AttributesResponse struct {
	Attributes []AttributeInfo `json:"attributes"`
}

// ListBindingsParams are the query parameters of GET /v1/registry.
type ListBindingsParams struct {
	Limit *int
}

// ServerInterface is the REST view of the agent.
type ServerInterface interface {
	// (GET /v1/address)
	GetAddress(ctx echo.Context) error
	// (GET /v1/registry)
	ListBindings(ctx echo.Context, params ListBindingsParams) error
	// (GET /v1/registry/{name})
	GetBinding(ctx echo.Context, name string) error
	// (GET /v1/attributes)
	ListAttributes(ctx echo.Context) error
	// (GET /v1/attributes/{name})
	GetAttribute(ctx echo.Context, name string) error
}

// serverInterfaceWrapper converts echo contexts to parameters.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func (w *serverInterfaceWrapper) GetAddress(ctx echo.Context) error {
	return w.handler.GetAddress(ctx)
}

func (w *serverInterfaceWrapper) ListBindings(ctx echo.Context) error {
	var params ListBindingsParams
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return service.NewBadParameterError("invalid format for parameter limit", err)
		}
		params.Limit = &limit
	}
	return w.handler.ListBindings(ctx, params)
}

func (w *serverInterfaceWrapper) GetBinding(ctx echo.Context) error {
	return w.handler.GetBinding(ctx, ctx.Param("name"))
}

func (w *serverInterfaceWrapper) ListAttributes(ctx echo.Context) error {
	return w.handler.ListAttributes(ctx)
}

func (w *serverInterfaceWrapper) GetAttribute(ctx echo.Context) error {
	return w.handler.GetAttribute(ctx, ctx.Param("name"))
}

// RegisterHandlers adds each server route to the echo router.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	wrapper := &serverInterfaceWrapper{handler: si}
	router.Add(http.MethodGet, "/v1/address", wrapper.GetAddress)
	router.Add(http.MethodGet, "/v1/registry", wrapper.ListBindings)
	router.Add(http.MethodGet, "/v1/registry/:name", wrapper.GetBinding)
	router.Add(http.MethodGet, "/v1/attributes", wrapper.ListAttributes)
	router.Add(http.MethodGet, "/v1/attributes/:name", wrapper.GetAttribute)
}
