// Package actuator jitters the pointer on a fixed period while the
// activation flag is set.
package actuator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mj1618/jiggle-cli/internal/logging"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/mj1618/jiggle-cli/internal/state"
)

const (
	// DefaultPeriod is the time between ticks.
	DefaultPeriod = 50 * time.Millisecond
	// DefaultStep is the horizontal distance of one move.
	DefaultStep = 10
)

// Options tunes an Actuator. Zero values select the defaults.
type Options struct {
	Period time.Duration
	Step   int
	Logger *slog.Logger
}

// Stats is a point-in-time view of the actuator.
type Stats struct {
	Ticks    int64 `yaml:"ticks"     json:"ticks"`
	Moves    int64 `yaml:"moves"     json:"moves"`
	NextStep int   `yaml:"next_step" json:"next_step"`
}

// Actuator moves the pointer by ±Step on every tick where the flag is set.
// The sign flips after each move, so consecutive active ticks oscillate
// around the starting point instead of drifting.
type Actuator struct {
	flag   *state.Flag
	mover  platform.PointerMover
	period time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	step  int
	ticks int64
	moves int64
}

// New creates an actuator reading flag and driving mover.
func New(flag *state.Flag, mover platform.PointerMover, opts Options) *Actuator {
	period := opts.Period
	if period <= 0 {
		period = DefaultPeriod
	}
	step := opts.Step
	if step == 0 {
		step = DefaultStep
	}
	return &Actuator{
		flag:   flag,
		mover:  mover,
		period: period,
		logger: logging.OrDiscard(opts.Logger),
		step:   step,
	}
}

// Period returns the tick period.
func (a *Actuator) Period() time.Duration {
	return a.period
}

// Tick performs one cycle: at most one relative move when the flag is set,
// nothing otherwise. The stored step is negated only after a move.
func (a *Actuator) Tick() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ticks++
	if !a.flag.Active() {
		return nil
	}
	if err := a.mover.MoveRelative(a.step, 0); err != nil {
		return fmt.Errorf("move pointer by (%d,0): %w", a.step, err)
	}
	a.moves++
	a.step = -a.step
	return nil
}

// Run ticks every period until ctx is cancelled. A mover failure ends the
// loop and is returned; cancellation returns nil.
func (a *Actuator) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.period)
	defer ticker.Stop()

	a.logger.Debug("actuator started", "period", a.period)
	for {
		if err := a.Tick(); err != nil {
			a.logger.Error("actuator stopped", "err", err)
			return err
		}
		select {
		case <-ctx.Done():
			a.logger.Debug("actuator cancelled")
			return nil
		case <-ticker.C:
		}
	}
}

// Stats returns the tick and move counters and the next signed step.
func (a *Actuator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{Ticks: a.ticks, Moves: a.moves, NextStep: a.step}
}
