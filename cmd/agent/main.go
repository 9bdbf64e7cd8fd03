package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myrendezvous/adapters/myredis"
	"myrendezvous/adapters/platform"
	"myrendezvous/agent"
	"myrendezvous/domain"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting rendezvous agent")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"port_override", config.Agent.PortOverride,
		"hostname_override", config.Agent.HostnameOverride,
		"random_ids", config.Agent.RandomIDs,
		"redis_addr", config.RedisAddr,
		"publish_ttl", config.Agent.PublishTTL,
	)

	opts := []agent.Option{
		agent.WithClock(func() time.Time { return time.Now().UTC() }),
	}
	if config.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		cache := myredis.NewJSONCache[domain.Publication](redisClient, "rendezvous")
		opts = append(opts, agent.WithPublisher(service.NewCachePublisher(cache, logger)))
	}

	provider := platform.NewProvider(logger)

	a, err := agent.New(logger, opts...).Activate(context.Background(), config.AgentArgs, config.Agent, provider)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to activate management agent", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Management agent reachable", "service_url", a.Address().String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Close(ctx); err != nil {
		level.Error(logger).Log("msg", "Shutdown finished with errors", "err", err)
		return
	}
	level.Info(logger).Log("msg", "Agent stopped")
}
