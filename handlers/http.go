package handlers

import (
	"net/http"
	"time"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface on top of the agent's registry and provider.
type HTTPServer struct {
	address  domain.ServiceAddress
	registry interfaces.Registry
	provider interfaces.Provider
	logger   log.Logger
}

var _ ServerInterface = (*HTTPServer)(nil)

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(address domain.ServiceAddress, registry interfaces.Registry, provider interfaces.Provider, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		address:  address,
		registry: helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		provider: helpers.NilPanic(provider, "handlers.http.go: provider is required"),
		logger:   log.WithPrefix(logger, "component", "HTTPServer"),
	}
}

// GetAddress (GET /v1/address) returns the service URL remote clients connect with.
func (h *HTTPServer) GetAddress(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, AddressResponse{
		ServiceURL: h.address.String(),
		Hostname:   h.address.Export.Host,
		Port:       h.address.Export.Port,
	})
}

// ListBindings (GET /v1/registry) returns the registry content, at most limit entries when given.
func (h *HTTPServer) ListBindings(ectx echo.Context, params ListBindingsParams) error {
	if params.Limit != nil && *params.Limit < 1 {
		return service.NewBadParameterError("limit must be positive", nil)
	}
	bindings, err := h.registry.List(ectx.Request().Context())
	if err != nil {
		return err
	}
	if params.Limit != nil && *params.Limit < len(bindings) {
		bindings = bindings[:*params.Limit]
	}

	out := make([]BindingInfo, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, toBindingInfo(b))
	}
	return ectx.JSON(http.StatusOK, BindingsResponse{Bindings: out})
}

// GetBinding (GET /v1/registry/{name}) returns one binding or 404.
func (h *HTTPServer) GetBinding(ectx echo.Context, name string) error {
	b, err := h.registry.Lookup(ectx.Request().Context(), name)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toBindingInfo(b))
}

// ListAttributes (GET /v1/attributes) returns every attribute with its current value.
func (h *HTTPServer) ListAttributes(ectx echo.Context) error {
	attributes, err := h.provider.Attributes(ectx.Request().Context())
	if err != nil {
		return err
	}
	out := make([]AttributeInfo, 0, len(attributes))
	for _, a := range attributes {
		out = append(out, toAttributeInfo(a))
	}
	return ectx.JSON(http.StatusOK, AttributesResponse{Attributes: out})
}

// GetAttribute (GET /v1/attributes/{name}) returns one attribute or 404.
func (h *HTTPServer) GetAttribute(ectx echo.Context, name string) error {
	a, err := h.provider.Attribute(ectx.Request().Context(), name)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toAttributeInfo(a))
}

func toBindingInfo(b domain.Binding) BindingInfo {
	info := BindingInfo{Name: b.Name, Address: b.Address, ExportID: b.ExportID}
	if !b.BoundAt.IsZero() {
		info.BoundAt = b.BoundAt.UTC().Format(time.RFC3339Nano)
	}
	return info
}

func toAttributeInfo(a domain.Attribute) AttributeInfo {
	return AttributeInfo{Name: a.Name, Description: a.Description, Value: normalize(a.Value), Writable: a.Writable}
}

// NewEcho builds the echo instance for the shared port: the validated REST view plus
// metrics at /metrics when metrics is non-nil.
func NewEcho(server ServerInterface, metrics http.Handler, logger log.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	e.Use(validator)
	RegisterHandlers(e, server)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	return e, nil
}
