package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "glyph"

type Config interface {
	GetTelemetryUrl() *string
	GetTelemetryOrganization() *string
}

type Telemetry struct {
	Meter      metric.Meter
	Tracer     trace.Tracer
	Instrument *Instrument

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

// New wires OTLP export when a telemetry url is configured. Without one,
// every span and measurement goes to no-op providers so call sites never
// branch on whether telemetry is enabled.
func New(config Config) (_ *Telemetry, err error) {
	telemetry := new(Telemetry)

	if config.GetTelemetryUrl() == nil {
		telemetry.Meter = metricnoop.NewMeterProvider().Meter(serviceName)
		telemetry.Tracer = tracenoop.NewTracerProvider().Tracer(serviceName)
		telemetry.Instrument, err = NewInstrument(telemetry.Meter)
		return telemetry, err
	}

	// * construct resource
	res, err := resource.New(context.Background(), resource.WithAttributes(
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, err
	}

	// * construct meter
	telemetry.Meter, err = NewMeter(telemetry, config, res)
	if err != nil {
		return nil, err
	}

	// * construct tracer
	telemetry.Tracer, err = NewTracer(telemetry, config, res)
	if err != nil {
		return nil, err
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)

	return telemetry, err
}

func NewMeter(telemetry *Telemetry, config Config, res *resource.Resource) (metric.Meter, error) {
	// * construct exporter
	exporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithEndpoint(*config.GetTelemetryUrl()),
		otlpmetricgrpc.WithHeaders(organizationHeaders(config)),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	// * construct provider
	telemetry.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(telemetry.meterProvider)

	return otel.Meter(serviceName), nil
}

func NewTracer(telemetry *Telemetry, config Config, res *resource.Resource) (trace.Tracer, error) {
	// * construct exporter
	exporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithEndpoint(*config.GetTelemetryUrl()),
		otlptracegrpc.WithHeaders(organizationHeaders(config)),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	// * construct provider
	telemetry.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(telemetry.tracerProvider)

	return otel.Tracer(serviceName), nil
}

// Shutdown flushes pending spans and measurements. A short-lived command
// exits right after its run, so nothing may be left to the batch timers.
func (r *Telemetry) Shutdown(ctx context.Context) {
	if r.tracerProvider != nil {
		_ = r.tracerProvider.Shutdown(ctx)
	}
	if r.meterProvider != nil {
		_ = r.meterProvider.Shutdown(ctx)
	}
}

func organizationHeaders(config Config) map[string]string {
	if config.GetTelemetryOrganization() == nil {
		return nil
	}
	return map[string]string{
		"X-Scope-OrgID": *config.GetTelemetryOrganization(),
	}
}
