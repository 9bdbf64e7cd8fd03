package service

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out export identities.
type IDGenerator func() string

// NewIDGenerator returns a random (UUIDv4) generator when random is set, otherwise a
// process-local counter starting at 1.
func NewIDGenerator(random bool) IDGenerator {
	if random {
		return uuid.NewString
	}
	var n atomic.Uint64
	return func() string {
		return strconv.FormatUint(n.Add(1), 10)
	}
}
