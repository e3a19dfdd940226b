package telemetry

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "ccengine"

	metricTokensInterned    = "ccengine.tokens.interned.total"
	metricMerges            = "ccengine.merges.total"
	metricPropagationSteps  = "ccengine.merge.propagation.steps"
	metricEquivalenceClasses = "ccengine.equivalence.classes"
)

// ClassCounter reports the current number of equivalence classes. The
// caller supplies it to NewProvider, for example as a closure over
// Engine.Stats().EquivalenceClasses; Engine does not build one itself.
type ClassCounter func() int64

// Provider manages OpenTelemetry setup and records the four instruments
// described in doc.go.
type Provider struct {
	// RunID identifies this Provider instance across the spans and metrics
	// it emits, letting a trace and its associated counters be correlated
	// after the fact.
	RunID uuid.UUID

	meterProvider *sdkmetric.MeterProvider
	tracer        trace.Tracer
	meter         metric.Meter

	tokensInterned   metric.Int64Counter
	merges           metric.Int64Counter
	propagationSteps metric.Int64Histogram

	mu sync.RWMutex
}

// Config holds telemetry configuration.
type Config struct {
	ServiceName    string
	EnableTracing  bool
	EnableMetrics  bool
}

// DefaultConfig returns default telemetry configuration: both tracing and
// metrics enabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:   serviceName,
		EnableTracing: true,
		EnableMetrics: true,
	}
}

// NewProvider creates a Provider with a Prometheus metrics exporter.
// classes is polled at metrics-collection time to populate the
// equivalence-classes gauge; it may be nil, in which case the gauge always
// reports zero.
func NewProvider(ctx context.Context, config Config, classes ClassCounter) (*Provider, error) {
	p := &Provider{RunID: uuid.New()}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := p.initMetrics(res, classes); err != nil {
			return nil, fmt.Errorf("telemetry: init metrics: %w", err)
		}
	}

	if config.EnableTracing {
		p.tracer = otel.GetTracerProvider().Tracer(serviceName)
	}

	return p, nil
}

func (p *Provider) initMetrics(res *resource.Resource, classes ClassCounter) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	var err2 error
	p.tokensInterned, err2 = p.meter.Int64Counter(metricTokensInterned,
		metric.WithDescription("Total number of tokens interned"))
	if err2 != nil {
		return err2
	}

	p.merges, err2 = p.meter.Int64Counter(metricMerges,
		metric.WithDescription("Total number of Merge calls"))
	if err2 != nil {
		return err2
	}

	p.propagationSteps, err2 = p.meter.Int64Histogram(metricPropagationSteps,
		metric.WithDescription("MaybeMerge candidate pairs examined per Merge call"))
	if err2 != nil {
		return err2
	}

	if classes == nil {
		classes = func() int64 { return 0 }
	}
	_, err2 = p.meter.Int64ObservableGauge(metricEquivalenceClasses,
		metric.WithDescription("Current number of equivalence classes"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(classes())
			return nil
		}),
	)
	return err2
}

// Tracer returns the tracer for creating spans. It is nil if tracing was
// not enabled.
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// RecordTokenInterned records one newly allocated token.
func (p *Provider) RecordTokenInterned(ctx context.Context) {
	if p.tokensInterned == nil {
		return
	}
	p.tokensInterned.Add(ctx, 1, metric.WithAttributes(attribute.String("run.id", p.RunID.String())))
}

// RecordMerge records one public Merge call and how many MaybeMerge
// candidate pairs it examined before reaching fixpoint.
func (p *Provider) RecordMerge(ctx context.Context, propagationSteps int) {
	if p.merges == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("run.id", p.RunID.String()))
	p.merges.Add(ctx, 1, attrs)
	p.propagationSteps.Record(ctx, int64(propagationSteps), attrs)
}

// Shutdown releases the telemetry provider's resources.
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("telemetry: shutdown meter provider: %w", err)
		}
	}
	return nil
}
