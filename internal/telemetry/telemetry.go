// Package telemetry exposes the simulation counters through the OpenTelemetry
// metric API. Without an installed MeterProvider the global no-op provider
// is used and recording costs nothing.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments groups the counters recorded by the game loop.
type Instruments struct {
	Ticks             metric.Int64Counter
	MonstersSpawned   metric.Int64Counter
	MonstersDefeated  metric.Int64Counter
	ProjectilesFired  metric.Int64Counter
	PlayerDamageTaken metric.Int64Counter
	Saves             metric.Int64Counter
}

// New creates the instruments on meter. A nil meter uses the global provider.
func New(meter metric.Meter, name string) (*Instruments, error) {
	if meter == nil {
		meter = otel.Meter(name)
	}

	var (
		in  Instruments
		err error
	)
	if in.Ticks, err = meter.Int64Counter("pixelrealm.ticks",
		metric.WithDescription("Simulation ticks that advanced state")); err != nil {
		return nil, fmt.Errorf("create ticks counter: %w", err)
	}
	if in.MonstersSpawned, err = meter.Int64Counter("pixelrealm.monsters.spawned"); err != nil {
		return nil, fmt.Errorf("create spawned counter: %w", err)
	}
	if in.MonstersDefeated, err = meter.Int64Counter("pixelrealm.monsters.defeated"); err != nil {
		return nil, fmt.Errorf("create defeated counter: %w", err)
	}
	if in.ProjectilesFired, err = meter.Int64Counter("pixelrealm.projectiles.fired"); err != nil {
		return nil, fmt.Errorf("create projectiles counter: %w", err)
	}
	if in.PlayerDamageTaken, err = meter.Int64Counter("pixelrealm.player.damage_taken",
		metric.WithUnit("{hp}")); err != nil {
		return nil, fmt.Errorf("create damage counter: %w", err)
	}
	if in.Saves, err = meter.Int64Counter("pixelrealm.saves"); err != nil {
		return nil, fmt.Errorf("create saves counter: %w", err)
	}
	return &in, nil
}

// Tick records one advanced tick.
func (in *Instruments) Tick(ctx context.Context) {
	if in == nil {
		return
	}
	in.Ticks.Add(ctx, 1)
}

// Spawned records n spawned monsters in a biome.
func (in *Instruments) Spawned(ctx context.Context, biome string, n int) {
	if in == nil || n <= 0 {
		return
	}
	in.MonstersSpawned.Add(ctx, int64(n), metric.WithAttributes(attribute.String("biome", biome)))
}

// Defeated records a defeated monster by kind.
func (in *Instruments) Defeated(ctx context.Context, kind string) {
	if in == nil {
		return
	}
	in.MonstersDefeated.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// Fired records a projectile spawn by owner.
func (in *Instruments) Fired(ctx context.Context, owner string) {
	if in == nil {
		return
	}
	in.ProjectilesFired.Add(ctx, 1, metric.WithAttributes(attribute.String("owner", owner)))
}

// Damaged records damage taken by the player.
func (in *Instruments) Damaged(ctx context.Context, amount int) {
	if in == nil || amount <= 0 {
		return
	}
	in.PlayerDamageTaken.Add(ctx, int64(amount))
}

// Saved records a save attempt and whether it succeeded.
func (in *Instruments) Saved(ctx context.Context, ok bool) {
	if in == nil {
		return
	}
	in.Saves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}
