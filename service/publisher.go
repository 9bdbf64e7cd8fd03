package service

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// PublicationKey is the cache key of the publication for hostname and port.
func PublicationKey(hostname string, port int) string {
	return net.JoinHostPort(hostname, strconv.Itoa(port))
}

// CachePublisher writes the publication to a TTL cache and refreshes it every TTL/2.
type CachePublisher struct {
	cache  interfaces.Cache[domain.Publication]
	logger log.Logger

	mu     sync.Mutex
	key    string
	cancel context.CancelFunc
	done   chan struct{}
}

var _ interfaces.AddressPublisher = (*CachePublisher)(nil)

func NewCachePublisher(cache interfaces.Cache[domain.Publication], logger log.Logger) *CachePublisher {
	return &CachePublisher{
		cache:  helpers.NilPanic(cache, "service.publisher.go: cache is required"),
		logger: log.With(helpers.NilPanic(logger, "service.publisher.go: logger is required"), "component", "publisher"),
	}
}

// Publish writes pub once and starts the refresh loop.
//
// Returns: nil on success; bad_parameter when ttl is not positive or a publication is already live;
// the cache error when the first write fails (nothing keeps running in that case).
func (p *CachePublisher) Publish(ctx context.Context, pub domain.Publication, ttl time.Duration) error {
	if ttl <= 0 {
		return NewBadParameterError("publication ttl must be positive", nil)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return NewBadParameterError("publication already live: "+p.key, nil)
	}

	key := PublicationKey(pub.Hostname, pub.Port)
	ttlMs := int(ttl / time.Millisecond)
	if err := p.cache.WriteValue(ctx, key, pub, ttlMs); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	p.key = key
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.refresh(loopCtx, key, pub, ttl, p.done)

	level.Info(p.logger).Log("msg", "Service address published", "key", key, "ttl", ttl)
	return nil
}

func (p *CachePublisher) refresh(ctx context.Context, key string, pub domain.Publication, ttl time.Duration, done chan struct{}) {
	defer close(done)
	interval := ttl / 2
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.cache.WriteValue(ctx, key, pub, int(ttl/time.Millisecond)); err != nil {
				level.Warn(p.logger).Log("msg", "Publication refresh failed", "key", key, "err", err)
			}
		}
	}
}

// Withdraw stops refreshing and deletes the publication. Withdrawing without a live publication does nothing.
func (p *CachePublisher) Withdraw(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	<-p.done

	key := p.key
	p.cancel, p.done, p.key = nil, nil, ""
	if err := p.cache.DeleteValue(ctx, key); err != nil {
		return err
	}
	level.Info(p.logger).Log("msg", "Service address withdrawn", "key", key)
	return nil
}
