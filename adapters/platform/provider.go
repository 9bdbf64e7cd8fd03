// Package platform is the management data provider of the host process: Go runtime
// controls, prometheus runtime and process collectors, and host vitals.
package platform

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
	"sort"
	"strings"
	"sync"

	"myrendezvous/domain"
	"myrendezvous/interfaces"
	"myrendezvous/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// MetricsPrefix prefixes attributes that mirror gathered prometheus series.
const MetricsPrefix = "metrics."

// AttributeDef describes an attribute registered by the host process. Set is nil for read-only attributes.
type AttributeDef struct {
	Description string
	Get         func(ctx context.Context) (any, error)
	Set         func(ctx context.Context, value any) error
}

// OperationDef describes an invocable operation.
type OperationDef struct {
	Description string
	Invoke      func(ctx context.Context, args []any) (any, error)
}

// Provider implements interfaces.Provider for the running process.
type Provider struct {
	registry *prometheus.Registry
	logger   log.Logger

	mu         sync.RWMutex
	attributes map[string]AttributeDef
	operations map[string]OperationDef
}

var _ interfaces.Provider = (*Provider)(nil)

// NewProvider creates the provider with the runtime, host and metrics attributes registered.
func NewProvider(logger log.Logger) *Provider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	p := &Provider{
		registry:   registry,
		logger:     log.With(logger, "component", "platform"),
		attributes: make(map[string]AttributeDef),
		operations: make(map[string]OperationDef),
	}
	for name, def := range runtimeAttributes() {
		p.attributes[name] = def
	}
	for name, def := range hostAttributes() {
		p.attributes[name] = def
	}
	for name, def := range runtimeOperations() {
		p.operations[name] = def
	}
	return p
}

// Registerer lets the host process add its own prometheus collectors; they show up as metrics.* attributes.
func (p *Provider) Registerer() prometheus.Registerer { return p.registry }

// MetricsHandler serves the provider's prometheus registry in the exposition format.
func (p *Provider) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// RegisterAttribute adds an attribute. Returns bad_parameter for an empty or taken name, a name
// under the metrics prefix, or a nil getter.
func (p *Provider) RegisterAttribute(name string, def AttributeDef) error {
	if name == "" || strings.HasPrefix(name, MetricsPrefix) {
		return service.NewBadParameterError(fmt.Sprintf("invalid attribute name %q", name), nil)
	}
	if def.Get == nil {
		return service.NewBadParameterError("attribute getter is required", nil)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.attributes[name]; ok {
		return service.NewBadParameterError("attribute already registered: "+name, nil)
	}
	p.attributes[name] = def
	return nil
}

// RegisterOperation adds an operation. Returns bad_parameter for an empty or taken name or a nil func.
func (p *Provider) RegisterOperation(name string, def OperationDef) error {
	if name == "" || def.Invoke == nil {
		return service.NewBadParameterError("operation name and func are required", nil)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.operations[name]; ok {
		return service.NewBadParameterError("operation already registered: "+name, nil)
	}
	p.operations[name] = def
	return nil
}

// Attributes returns registered attributes and gathered metric series ordered by name.
// Attributes whose getter fails are left out and logged.
func (p *Provider) Attributes(ctx context.Context) ([]domain.Attribute, error) {
	p.mu.RLock()
	defs := make(map[string]AttributeDef, len(p.attributes))
	for name, def := range p.attributes {
		defs[name] = def
	}
	p.mu.RUnlock()

	out := make([]domain.Attribute, 0, len(defs)+64)
	for name, def := range defs {
		value, err := def.Get(ctx)
		if err != nil {
			level.Warn(p.logger).Log("msg", "Attribute unavailable", "name", name, "err", err)
			continue
		}
		out = append(out, domain.Attribute{Name: name, Description: def.Description, Value: value, Writable: def.Set != nil})
	}
	out = append(out, p.metricAttributes()...)

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (p *Provider) Attribute(ctx context.Context, name string) (domain.Attribute, error) {
	p.mu.RLock()
	def, ok := p.attributes[name]
	p.mu.RUnlock()
	if ok {
		value, err := def.Get(ctx)
		if err != nil {
			return domain.Attribute{}, service.NewInternalServerError("can't read attribute "+name, err)
		}
		return domain.Attribute{Name: name, Description: def.Description, Value: value, Writable: def.Set != nil}, nil
	}

	if strings.HasPrefix(name, MetricsPrefix) {
		for _, a := range p.metricAttributes() {
			if a.Name == name {
				return a, nil
			}
		}
	}
	return domain.Attribute{}, service.NewEntityNotFoundError("no such attribute: "+name, nil)
}

func (p *Provider) SetAttribute(ctx context.Context, name string, value any) error {
	p.mu.RLock()
	def, ok := p.attributes[name]
	p.mu.RUnlock()
	if !ok {
		if _, err := p.Attribute(ctx, name); err == nil {
			return service.NewBadParameterError("attribute is read-only: "+name, nil)
		}
		return service.NewEntityNotFoundError("no such attribute: "+name, nil)
	}
	if def.Set == nil {
		return service.NewBadParameterError("attribute is read-only: "+name, nil)
	}
	if err := def.Set(ctx, value); err != nil {
		return err
	}
	level.Info(p.logger).Log("msg", "Attribute changed", "name", name, "value", value)
	return nil
}

func (p *Provider) Operations(_ context.Context) ([]domain.Operation, error) {
	p.mu.RLock()
	out := make([]domain.Operation, 0, len(p.operations))
	for name, def := range p.operations {
		out = append(out, domain.Operation{Name: name, Description: def.Description})
	}
	p.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (p *Provider) Invoke(ctx context.Context, name string, args []any) (any, error) {
	p.mu.RLock()
	def, ok := p.operations[name]
	p.mu.RUnlock()
	if !ok {
		return nil, service.NewEntityNotFoundError("no such operation: "+name, nil)
	}
	return def.Invoke(ctx, args)
}

// metricAttributes converts the gathered families into read-only attributes.
// Gather errors are logged; whatever was gathered is still returned.
func (p *Provider) metricAttributes() []domain.Attribute {
	families, err := p.registry.Gather()
	if err != nil {
		level.Warn(p.logger).Log("msg", "Metrics gather incomplete", "err", err)
	}
	return metricAttributes(families)
}

func runtimeAttributes() map[string]AttributeDef {
	return map[string]AttributeDef{
		"runtime.goroutines": {
			Description: "Number of goroutines that currently exist",
			Get:         func(context.Context) (any, error) { return runtime.NumGoroutine(), nil },
		},
		"runtime.version": {
			Description: "Go version the process was built with",
			Get:         func(context.Context) (any, error) { return runtime.Version(), nil },
		},
		"runtime.gomaxprocs": {
			Description: "Maximum number of CPUs executing Go code simultaneously",
			Get:         func(context.Context) (any, error) { return runtime.GOMAXPROCS(0), nil },
			Set: func(_ context.Context, value any) error {
				n, err := toInt(value)
				if err != nil || n < 1 {
					return service.NewBadParameterError("gomaxprocs must be a positive integer", err)
				}
				runtime.GOMAXPROCS(n)
				return nil
			},
		},
		"runtime.gc_percent": {
			Description: "GC target percentage (GOGC); negative disables the collector",
			Get:         func(context.Context) (any, error) { return gcPercent(), nil },
			Set: func(_ context.Context, value any) error {
				n, err := toInt(value)
				if err != nil {
					return service.NewBadParameterError("gc_percent must be an integer", err)
				}
				debug.SetGCPercent(n)
				return nil
			},
		},
	}
}

func hostAttributes() map[string]AttributeDef {
	return map[string]AttributeDef{
		"host.cpu.percent": {
			Description: "Host CPU utilisation since the previous reading, percent",
			Get: func(ctx context.Context) (any, error) {
				percents, err := cpu.PercentWithContext(ctx, 0, false)
				if err != nil {
					return nil, fmt.Errorf("failed to get CPU usage: %w", err)
				}
				if len(percents) == 0 {
					return 0.0, nil
				}
				return percents[0], nil
			},
		},
		"host.memory.used_percent": {
			Description: "Host memory in use, percent",
			Get: func(ctx context.Context) (any, error) {
				stat, err := mem.VirtualMemoryWithContext(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to get memory usage: %w", err)
				}
				return stat.UsedPercent, nil
			},
		},
		"host.uptime_seconds": {
			Description: "Host uptime, seconds",
			Get: func(ctx context.Context) (any, error) {
				uptime, err := host.UptimeWithContext(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to get uptime: %w", err)
				}
				return uptime, nil
			},
		},
	}
}

func runtimeOperations() map[string]OperationDef {
	return map[string]OperationDef{
		"runtime.gc": {
			Description: "Run a garbage collection",
			Invoke: noArgs(func() any {
				runtime.GC()
				return nil
			}),
		},
		"runtime.free_os_memory": {
			Description: "Force a garbage collection and return as much memory to the OS as possible",
			Invoke: noArgs(func() any {
				debug.FreeOSMemory()
				return nil
			}),
		},
		"runtime.num_goroutine": {
			Description: "Return the number of goroutines",
			Invoke:      noArgs(func() any { return runtime.NumGoroutine() }),
		},
	}
}

func noArgs(fn func() any) func(context.Context, []any) (any, error) {
	return func(_ context.Context, args []any) (any, error) {
		if len(args) != 0 {
			return nil, service.NewBadParameterError("operation takes no arguments", nil)
		}
		return fn(), nil
	}
}

func gcPercent() int {
	sample := []metrics.Sample{{Name: "/gc/gogc:percent"}}
	metrics.Read(sample)
	if sample[0].Value.Kind() != metrics.KindUint64 {
		return 100
	}
	return int(sample[0].Value.Uint64())
}

// toInt accepts integral numbers as decoded from the wire (float64) or passed in-process.
func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%T is not a number", value)
	}
}
