package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNew_WithNoopMeter(t *testing.T) {
	in, err := New(noop.NewMeterProvider().Meter("test"), "test")
	require.NoError(t, err)
	require.NotNil(t, in)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		in.Tick(ctx)
		in.Spawned(ctx, "DESERT", 3)
		in.Defeated(ctx, "slime")
		in.Fired(ctx, "player")
		in.Damaged(ctx, 5)
		in.Saved(ctx, true)
	})
}

func TestNew_GlobalProvider(t *testing.T) {
	in, err := New(nil, "pixelrealm")
	require.NoError(t, err)
	assert.NotNil(t, in.Ticks)
}

func TestNilInstrumentsAreSafe(t *testing.T) {
	var in *Instruments
	ctx := context.Background()
	assert.NotPanics(t, func() {
		in.Tick(ctx)
		in.Defeated(ctx, "x")
		in.Saved(ctx, false)
	})
}
