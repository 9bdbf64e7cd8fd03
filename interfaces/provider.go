package interfaces

import (
	"context"

	"myrendezvous/domain"
)

// Provider is the management data provider exposed by the connector: runtime metrics
// and operational controls of the host process.
//
//go:generate moq -stub -out mock/provider.go -pkg mock . Provider
type Provider interface {
	// Attributes returns every attribute with its current value, ordered by name.
	Attributes(ctx context.Context) ([]domain.Attribute, error)
	// Attribute returns one attribute or entity_not_found.
	Attribute(ctx context.Context, name string) (domain.Attribute, error)
	// SetAttribute writes a writable attribute.
	// Returns entity_not_found for unknown names, bad_parameter for read-only attributes or wrong values.
	SetAttribute(ctx context.Context, name string, value any) error
	// Operations lists invocable operations ordered by name.
	Operations(ctx context.Context) ([]domain.Operation, error)
	// Invoke runs an operation and returns its result.
	Invoke(ctx context.Context, name string, args []any) (any, error)
}
