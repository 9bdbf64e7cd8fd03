package interfaces

import (
	"context"
	"time"

	"myrendezvous/domain"
)

// AddressPublisher advertises the service address in a shared store while the agent is up.
//
//go:generate moq -stub -out mock/address_publisher.go -pkg mock . AddressPublisher
type AddressPublisher interface {
	// Publish writes the publication with the given TTL and keeps refreshing it until Withdraw.
	Publish(ctx context.Context, pub domain.Publication, ttl time.Duration) error
	// Withdraw stops refreshing and deletes the publication.
	Withdraw(ctx context.Context) error
}
