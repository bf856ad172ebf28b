package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/kenone20/domainogen"

// Counter is a named Int64 counter resolved against the global meter
// provider. Instrument creation errors degrade to a no-op counter so metrics
// can never break a request path.
type Counter struct {
	c metric.Int64Counter
}

// NewCounter creates a counter on the global meter provider. Call after Setup
// so the Prometheus and OTLP readers observe it.
func NewCounter(name, description string) *Counter {
	c, err := otel.Meter(meterName).Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		c, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter(name)
	}
	return &Counter{c: c}
}

// Add increments the counter by one with the given string attributes,
// passed as alternating key/value pairs.
func (c *Counter) Add(ctx context.Context, kv ...string) {
	if c == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, attribute.String(kv[i], kv[i+1]))
	}
	c.c.Add(ctx, 1, metric.WithAttributes(attrs...))
}
