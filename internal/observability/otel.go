// Package observability bootstraps OpenTelemetry tracing for the biztime API.
// HTTP spans come from otelgin, SQL spans from the GORM tracing plugin and
// service spans from otel.Tracer; all report through the provider
// installed by SetupOTel.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc/credentials"

	"github.com/tbourn/go-biztime-backend/internal/config"
)

// ServiceNamespace groups every biztime process in the trace backend.
const ServiceNamespace = "biztime"

// attrAPIBasePath records where the resource routes are mounted, so traces
// from instances behind different prefixes can be told apart.
const attrAPIBasePath = attribute.Key("biztime.api.base_path")

// seams replaced in tests
var (
	newOTLPClient = otlptracegrpc.NewClient

	newOTLPExporterFn = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return otlptrace.New(ctx, client)
	}

	newServiceResourceFn = func(ctx context.Context, attrs []attribute.KeyValue) (*resource.Resource, error) {
		return resource.New(
			ctx,
			resource.WithFromEnv(),
			resource.WithTelemetrySDK(),
			resource.WithAttributes(attrs...),
		)
	}
)

// dbSystem maps a DB_DRIVER value to the db.system semantic convention.
func dbSystem(driver string) attribute.KeyValue {
	switch driver {
	case config.DriverPostgres:
		return semconv.DBSystemKey.String("postgresql")
	case config.DriverSQLite:
		return semconv.DBSystemKey.String("sqlite")
	default:
		return semconv.DBSystemKey.String("other_sql")
	}
}

// serviceAttributes describes this process to the trace backend. Attributes
// set through OTEL_RESOURCE_ATTRIBUTES are merged in by the resource
// detector and lose to these on conflict.
func serviceAttributes(cfg config.Config, version string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.OTEL.ServiceName),
		semconv.ServiceVersion(version),
		semconv.ServiceNamespace(ServiceNamespace),
		dbSystem(cfg.Database.Driver),
		attrAPIBasePath.String(cfg.APIBasePath),
	}
	if cfg.OTEL.Environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(cfg.OTEL.Environment))
	}
	return attrs
}

// SetupOTel configures OpenTelemetry tracing for the API described by cfg
// and returns a shutdown function. When tracing is disabled the returned
// function does nothing.
func SetupOTel(ctx context.Context, cfg config.Config, version string) (func(context.Context) error, error) {
	oc := cfg.OTEL
	if !oc.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(oc.Endpoint),
	}
	if oc.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		creds := credentials.NewClientTLSFromCert(nil, "")
		opts = append(opts, otlptracegrpc.WithTLSCredentials(creds))
	}

	exp, err := newOTLPExporterFn(ctx, newOTLPClient(opts...))
	if err != nil {
		return nil, err
	}

	res, err := newServiceResourceFn(ctx, serviceAttributes(cfg, version))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(oc.SampleRatio))),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
