// Command probe connects to rendezvous agents the way a monitoring console would and logs what
// their management surface exposes. The target is a service URL given as the first argument
// (or PROBE_SERVICE_URL); without one, every publication found in Redis at REDIS_ADDR is probed.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"myrendezvous/adapters/mgmtclient"
	"myrendezvous/adapters/myredis"
	"myrendezvous/domain"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/multierr"
)

const (
	envServiceURL = "PROBE_SERVICE_URL"
	envRedisAddr  = "REDIS_ADDR"

	probeTimeout = 10 * time.Second
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	urls, err := targets(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to find agents to probe", "err", err)
		os.Exit(1)
	}

	var errs error
	for _, url := range urls {
		if err := probe(ctx, url, log.With(logger, "service_url", url)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		level.Error(logger).Log("msg", "Probe failed", "err", errs)
		os.Exit(1)
	}
}

func targets(ctx context.Context) ([]string, error) {
	if len(os.Args) > 1 {
		return os.Args[1:], nil
	}
	if v := os.Getenv(envServiceURL); v != "" {
		return []string{v}, nil
	}
	addr := os.Getenv(envRedisAddr)
	if addr == "" {
		return nil, errors.New("no service url given and REDIS_ADDR is not set")
	}

	client, err := myredis.NewRedisUniversalClient(addr)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	pubs, err := myredis.NewJSONCache[domain.Publication](client, "rendezvous").ListAllValues(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(pubs))
	for _, p := range pubs {
		urls = append(urls, p.ServiceURL)
	}
	if len(urls) == 0 {
		return nil, errors.New("no agents published")
	}
	return urls, nil
}

func probe(ctx context.Context, url string, logger log.Logger) error {
	client, err := mgmtclient.Connect(ctx, url)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to connect", "err", err)
		return err
	}
	defer client.Close()

	level.Info(logger).Log("msg", "Connected", "export_address", client.Binding().Address)

	attrs, err := client.Attributes(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to list attributes", "err", err)
		return err
	}
	for _, a := range attrs {
		level.Info(logger).Log("attribute", a.Name, "value", a.Value, "writable", a.Writable)
	}

	ops, err := client.Operations(ctx)
	if err != nil {
		return err
	}
	for _, op := range ops {
		level.Debug(logger).Log("operation", op.Name, "description", op.Description)
	}
	return nil
}
