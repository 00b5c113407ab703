package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lguimbarda/opt-pull/pull/core"
	"github.com/lguimbarda/opt-pull/pull/gen"
)

// Demonstrates wiring a producer to OpenTelemetry counters and
// histograms through the noop meter provider.
func TestInstrumentForwardsSequence(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("optpull/observability")

	src, err := Instrument[int](context.Background(), gen.NewSeq(5), meter, "pull")
	if err != nil {
		t.Fatalf("instrument: %v", err)
	}

	got := core.Collect[int](core.New[int](src))
	if len(got) != 5 {
		t.Fatalf("collected %d values, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("element %d = %d, want %d", i, v, i)
		}
	}
}

func TestInstrumentCountsMatchHookCounts(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("optpull/observability")

	var values, exhausts int
	hooked := Wrap[int](gen.NewSeq(3), Hooks[int]{
		OnValue:   func(int) { values++ },
		OnExhaust: func() { exhausts++ },
	})

	src, err := Instrument[int](context.Background(), hooked, meter, "pull")
	if err != nil {
		t.Fatalf("instrument: %v", err)
	}

	core.Collect[int](core.New[int](src))

	if values != 3 {
		t.Errorf("counted %d values, want 3", values)
	}
	if exhausts != 1 {
		t.Errorf("counted %d exhaustions, want 1", exhausts)
	}
}
