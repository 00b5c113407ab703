package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// Instrument wraps a producer with OpenTelemetry metrics: a counter of
// produced values (<name>.values), a counter of exhaustion signals
// (<name>.exhausted), and a histogram of per-pull latency in
// microseconds (<name>.next_duration_us). The context is used for
// metric recording only; it does not cancel the producer.
func Instrument[T any](ctx context.Context, src core.Producer[T], meter metric.Meter, name string) (*Instrumented[T], error) {
	values, err := meter.Int64Counter(name+".values",
		metric.WithDescription("count of produced values"))
	if err != nil {
		return nil, err
	}
	exhausted, err := meter.Int64Counter(name+".exhausted",
		metric.WithDescription("count of exhaustion signals"))
	if err != nil {
		return nil, err
	}
	latency, err := meter.Int64Histogram(name+".next_duration_us",
		metric.WithDescription("per-pull latency in microseconds"))
	if err != nil {
		return nil, err
	}
	return &Instrumented[T]{
		ctx:       ctx,
		src:       src,
		values:    values,
		exhausted: exhausted,
		latency:   latency,
	}, nil
}

// Instrumented forwards pulls to the wrapped producer and records
// metrics around each one.
type Instrumented[T any] struct {
	ctx       context.Context
	src       core.Producer[T]
	values    metric.Int64Counter
	exhausted metric.Int64Counter
	latency   metric.Int64Histogram
}

// Next pulls the wrapped producer, timing the pull and counting the
// outcome.
func (p *Instrumented[T]) Next() core.Option[T] {
	start := time.Now()
	res := p.src.Next()
	p.latency.Record(p.ctx, time.Since(start).Microseconds())
	if res.IsSome() {
		p.values.Add(p.ctx, 1)
	} else {
		p.exhausted.Add(p.ctx, 1)
	}
	return res
}

// Underlying returns the wrapped producer.
func (p *Instrumented[T]) Underlying() core.Producer[T] { return p.src }
