package interfaces

import (
	"context"

	"myrendezvous/domain"
)

// ExportService is a connector that exposes a Provider on the export locator of its address.
//
//go:generate moq -stub -out mock/export_service.go -pkg mock . ExportService
type ExportService interface {
	// Start makes the connector reachable and registers it under the address name in the
	// registry found at the lookup locator. Returns bind_error on any failure.
	Start(ctx context.Context) error
	// Stop unregisters and unmounts the connector. Stopping an inactive connector is a no-op.
	Stop(ctx context.Context) error
	Address() domain.ServiceAddress
	ExportID() string
	Active() bool
}

// ExportServiceFactory builds connectors.
//
//go:generate moq -stub -out mock/export_service_factory.go -pkg mock . ExportServiceFactory
type ExportServiceFactory interface {
	Create(address domain.ServiceAddress, env domain.Environment, provider Provider) (ExportService, error)
}
