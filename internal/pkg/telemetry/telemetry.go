// Package telemetry sets up OpenTelemetry logs, metrics and traces exported
// over OTLP/gRPC. Exporter endpoints come from the standard
// OTEL_EXPORTER_OTLP_* variables.
//
// Metrics and traces are installed as the global providers. The log provider
// is kept here for the logger package, which bridges zap into it.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the provider installed by Init, or nil while
// telemetry is off.
func LoggerProvider() log.LoggerProvider {
	if lp := loggerProvider.Load(); lp != nil {
		return lp
	}
	return nil
}

// ShutdownFunc flushes and stops every provider installed by Init.
type ShutdownFunc func(ctx context.Context) error

type config struct {
	version     string
	environment string
}

type Option func(*config)

// WithServiceVersion sets the service.version resource attribute.
func WithServiceVersion(v string) Option {
	return func(c *config) {
		c.version = v
	}
}

// WithEnvironment sets the deployment.environment.name resource attribute.
func WithEnvironment(env string) Option {
	return func(c *config) {
		c.environment = env
	}
}

func newResource(serviceName string, cfg config) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if cfg.version != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.version))
	}
	if cfg.environment != "" {
		attrs = append(attrs, attribute.String("deployment.environment.name", cfg.environment))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// shutdowns stops providers in reverse order of creation.
type shutdowns []func(context.Context) error

func (s shutdowns) run(ctx context.Context) error {
	errs := make([]error, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		errs = append(errs, s[i](ctx))
	}
	return errors.Join(errs...)
}

// Init installs the log, metric and trace providers for serviceName, along
// with W3C trace context propagation. It must run before logger.Init for logs
// to be bridged. On error, whatever was already set up is shut down.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName, cfg)
	if err != nil {
		return nil, err
	}

	var stop shutdowns

	logExporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)
	loggerProvider.Store(lp)
	stop = append(stop, func(ctx context.Context) error {
		defer loggerProvider.Store(nil)
		return lp.Shutdown(ctx)
	})

	metricExporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, errors.Join(err, stop.run(ctx))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	stop = append(stop, mp.Shutdown)

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, errors.Join(err, stop.run(ctx))
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	stop = append(stop, tp.Shutdown)

	otel.SetMeterProvider(mp)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return stop.run, nil
}
