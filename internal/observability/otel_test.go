package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tbourn/go-biztime-backend/internal/config"
)

func preserveOTelGlobals(t *testing.T) {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
}

func enabledCfg(name string) config.Config {
	return config.Config{
		APIBasePath: "/",
		Database:    config.DatabaseConfig{Driver: config.DriverSQLite},
		OTEL: config.OTELConfig{
			Enabled:     true,
			Insecure:    true,
			Endpoint:    "localhost:4317",
			ServiceName: name,
			SampleRatio: 1.0,
			Environment: "test",
		},
	}
}

func TestSetupOTel_Disabled_NoOp(t *testing.T) {
	preserveOTelGlobals(t)
	prevTP := otel.GetTracerProvider()

	shutdown, err := SetupOTel(context.Background(), config.Config{}, "v0.0.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("no-op shutdown returned error: %v", err)
	}
	if otel.GetTracerProvider() != prevTP {
		t.Fatalf("disabled setup must not touch the global provider")
	}
}

func TestSetupOTel_Insecure_InstallsProviderAndPropagator(t *testing.T) {
	preserveOTelGlobals(t)

	shutdown, err := SetupOTel(context.Background(), enabledCfg("biztime-insecure"), "v1.2.3")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("expected *sdktrace.TracerProvider")
	}

	ctx, span := otel.Tracer("services/InvoiceService").Start(context.Background(), "Update")
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	span.End()
	if carrier.Get("traceparent") == "" {
		t.Fatalf("expected traceparent header to be injected, got %v", carrier)
	}
}

func TestSetupOTel_SecureTLS_InstallsProvider(t *testing.T) {
	preserveOTelGlobals(t)

	cfg := enabledCfg("biztime-tls")
	cfg.OTEL.Insecure = false
	shutdown, err := SetupOTel(context.Background(), cfg, "v9.9.9")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("expected *sdktrace.TracerProvider")
	}
}

func TestSetupOTel_ExporterError_LeavesGlobalsIntact(t *testing.T) {
	preserveOTelGlobals(t)

	orig := newOTLPExporterFn
	t.Cleanup(func() { newOTLPExporterFn = orig })
	newOTLPExporterFn = func(context.Context, otlptrace.Client) (*otlptrace.Exporter, error) {
		return nil, errors.New("boom-exporter")
	}

	prevTP := otel.GetTracerProvider()
	if _, err := SetupOTel(context.Background(), enabledCfg("biztime"), "v0"); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if otel.GetTracerProvider() != prevTP {
		t.Fatalf("tracer provider changed on failure")
	}
}

func TestSetupOTel_ResourceError_LeavesGlobalsIntact(t *testing.T) {
	preserveOTelGlobals(t)

	orig := newServiceResourceFn
	t.Cleanup(func() { newServiceResourceFn = orig })
	newServiceResourceFn = func(context.Context, []attribute.KeyValue) (*resource.Resource, error) {
		return nil, errors.New("boom-resource")
	}

	prevProp := otel.GetTextMapPropagator()
	if _, err := SetupOTel(context.Background(), enabledCfg("biztime"), "v0"); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if otel.GetTextMapPropagator() != prevProp {
		t.Fatalf("propagator changed on failure")
	}
}

func TestShutdown_IsCallable(t *testing.T) {
	preserveOTelGlobals(t)

	shutdown, err := SetupOTel(context.Background(), enabledCfg("biztime-shutdown"), "v1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
}

func TestServiceAttributes_DescribeDeployment(t *testing.T) {
	cases := []struct {
		driver   string
		dbSystem string
	}{
		{config.DriverSQLite, "sqlite"},
		{config.DriverPostgres, "postgresql"},
		{"mysql", "other_sql"},
	}
	for _, tc := range cases {
		cfg := enabledCfg("biztime-api")
		cfg.Database.Driver = tc.driver
		cfg.APIBasePath = "/api/v1"
		cfg.OTEL.Environment = "staging"

		set := attribute.NewSet(serviceAttributes(cfg, "v2.0.0")...)
		want := map[attribute.Key]string{
			"service.name":           "biztime-api",
			"service.version":        "v2.0.0",
			"service.namespace":      ServiceNamespace,
			"db.system":              tc.dbSystem,
			"deployment.environment": "staging",
			"biztime.api.base_path":  "/api/v1",
		}
		for k, v := range want {
			got, ok := set.Value(k)
			if !ok || got.AsString() != v {
				t.Fatalf("%s: %s=%q want %q", tc.driver, k, got.AsString(), v)
			}
		}
	}

	// no environment, no deployment.environment
	cfg := enabledCfg("biztime")
	cfg.OTEL.Environment = ""
	set := attribute.NewSet(serviceAttributes(cfg, "dev")...)
	if _, ok := set.Value("deployment.environment"); ok {
		t.Fatalf("deployment.environment should be omitted when unset")
	}
}

func TestSetupOTel_ResourceCarriesServiceAttributes(t *testing.T) {
	preserveOTelGlobals(t)

	orig := newServiceResourceFn
	t.Cleanup(func() { newServiceResourceFn = orig })
	var res *resource.Resource
	newServiceResourceFn = func(ctx context.Context, attrs []attribute.KeyValue) (*resource.Resource, error) {
		r, err := orig(ctx, attrs)
		res = r
		return r, err
	}

	cfg := enabledCfg("biztime-res")
	cfg.Database.Driver = config.DriverPostgres
	shutdown, err := SetupOTel(context.Background(), cfg, "v3")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if res == nil {
		t.Fatalf("resource was not built")
	}
	set := res.Set()
	for k, v := range map[attribute.Key]string{
		"service.name":           "biztime-res",
		"service.version":        "v3",
		"db.system":              "postgresql",
		"deployment.environment": "test",
	} {
		if got, ok := set.Value(k); !ok || got.AsString() != v {
			t.Fatalf("resource %s=%q want %q", k, got.AsString(), v)
		}
	}
}
