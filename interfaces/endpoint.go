package interfaces

import (
	"net/http"

	"google.golang.org/grpc"
)

// Endpoint is one listening TCP port that multiplexes gRPC services and an HTTP handler.
type Endpoint interface {
	// Mount routes every method of the named gRPC service to handler.
	// Returns bind_error when the service is already mounted.
	Mount(service string, handler grpc.StreamHandler) error
	Unmount(service string)
	// SetHTTPHandler sets the handler for non-gRPC requests on the same port.
	SetHTTPHandler(handler http.Handler)
	Port() int
	Close() error
}

// EndpointSet gives access to the endpoints this process listens on, by port.
type EndpointSet interface {
	Lookup(port int) (Endpoint, bool)
}
