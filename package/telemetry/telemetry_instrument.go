package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	ComponentCounter     metric.Int64Counter
	RunDurationHistogram metric.Int64Histogram
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	componentCounter, err := meter.Int64Counter(
		"glyph.components.generated",
		metric.WithDescription("Number of component files generated"),
	)
	if err != nil {
		return nil, err
	}

	runDurationHistogram, err := meter.Int64Histogram(
		"glyph.run.duration",
		metric.WithDescription("Duration of pipeline runs"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		ComponentCounter:     componentCounter,
		RunDurationHistogram: runDurationHistogram,
	}, nil
}

func (r *Instrument) ComponentGenerated(ctx context.Context, count int64, source string) {
	r.ComponentCounter.Add(
		ctx,
		count,
		metric.WithAttributes(
			attribute.String("glyph.source", source),
		),
	)
}

func (r *Instrument) RunDurationRecord(ctx context.Context, duration int64, outcome string) {
	r.RunDurationHistogram.Record(
		ctx,
		duration,
		metric.WithAttributes(
			attribute.String("glyph.outcome", outcome),
		),
	)
}
