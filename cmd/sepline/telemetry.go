package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "sepline"

// telemetry bundles the metrics registry and the tracer of one CLI run.
type telemetry struct {
	registry    *prometheus.Registry
	metricsFile string
	tracer      trace.Tracer
	shutdown    func(context.Context) error
}

// newTelemetry creates a private registry and, when traceOut is non-nil, a
// tracer provider exporting spans to traceOut as they end.
func newTelemetry(cfg TelemetryConfig, traceOut io.Writer) (*telemetry, error) {
	t := &telemetry{
		registry:    prometheus.NewRegistry(),
		metricsFile: cfg.MetricsFile,
		tracer:      noop.NewTracerProvider().Tracer(serviceName),
		shutdown:    func(context.Context) error { return nil },
	}
	if !cfg.Trace || traceOut == nil {
		return t, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(traceOut), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	t.tracer = tp.Tracer(serviceName)
	t.shutdown = tp.Shutdown

	return t, nil
}

// close flushes spans and writes the metrics textfile if one is configured.
func (t *telemetry) close(ctx context.Context) error {
	err := t.shutdown(ctx)
	if t.metricsFile != "" {
		if werr := prometheus.WriteToTextfile(t.metricsFile, t.registry); werr != nil && err == nil {
			err = fmt.Errorf("write metrics: %w", werr)
		}
	}

	return err
}
