// Package jiggler wires the activation flag, the actuator and the key
// listener into one run.
package jiggler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/jiggle-cli/internal/actuator"
	"github.com/mj1618/jiggle-cli/internal/listener"
	"github.com/mj1618/jiggle-cli/internal/logging"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/mj1618/jiggle-cli/internal/state"
)

// ErrNoRemote is returned by Toggle and Stop when remote control is off.
var ErrNoRemote = errors.New("remote control not enabled")

// remoteBuffer bounds queued remote key presses.
const remoteBuffer = 16

// Options configures a Jiggler.
type Options struct {
	Provider  *platform.Provider
	ToggleKey platform.Key
	StopKey   platform.Key
	Period    time.Duration
	Logger    *slog.Logger

	// RemoteControl merges an in-memory key source into the host stream so
	// Toggle and Stop can inject presses of the configured keys.
	RemoteControl bool

	Clock func() time.Time
}

// Summary is reported when a run ends.
type Summary struct {
	StoppedBy listener.Reason `yaml:"stopped_by" json:"stopped_by"`
	Active    bool            `yaml:"active"     json:"active"`
	Ticks     int64           `yaml:"ticks"      json:"ticks"`
	Moves     int64           `yaml:"moves"      json:"moves"`
	Toggles   int64           `yaml:"toggles"    json:"toggles"`
	Elapsed   string          `yaml:"elapsed"    json:"elapsed"`
}

// Status is a live snapshot of a run.
type Status struct {
	Active    bool         `yaml:"active"     json:"active"`
	Ticks     int64        `yaml:"ticks"      json:"ticks"`
	Moves     int64        `yaml:"moves"      json:"moves"`
	NextStep  int          `yaml:"next_step"  json:"next_step"`
	Toggles   int64        `yaml:"toggles"    json:"toggles"`
	ToggleKey platform.Key `yaml:"toggle_key" json:"toggle_key"`
	StopKey   platform.Key `yaml:"stop_key"   json:"stop_key"`
}

// Jiggler owns one activation flag and the two components sharing it.
type Jiggler struct {
	flag     *state.Flag
	actuator *actuator.Actuator
	listener *listener.Listener
	remote   *platform.ChannelSource
	logger   *slog.Logger
	clock    func() time.Time
}

// New builds the components. The provider must supply both a mover and a
// key source.
func New(opts Options) (*Jiggler, error) {
	if opts.Provider == nil {
		return nil, errors.New("jiggler: nil provider")
	}
	if opts.Provider.Mover == nil {
		return nil, errors.New("jiggler: pointer movement not available on this platform")
	}
	if opts.Provider.Keys == nil {
		return nil, errors.New("jiggler: global key events not available on this platform")
	}
	logger := logging.OrDiscard(opts.Logger)
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	flag := state.NewFlag()
	act := actuator.New(flag, opts.Provider.Mover, actuator.Options{
		Period: opts.Period,
		Logger: logger.With("component", "actuator"),
	})

	var remote *platform.ChannelSource
	keys := opts.Provider.Keys
	if opts.RemoteControl {
		remote = platform.NewChannelSource(remoteBuffer)
		keys = platform.MergeSources(keys, remote)
	}

	lis, err := listener.New(flag, keys, listener.Options{
		ToggleKey: opts.ToggleKey,
		StopKey:   opts.StopKey,
		Logger:    logger.With("component", "listener"),
	})
	if err != nil {
		return nil, err
	}

	return &Jiggler{
		flag:     flag,
		actuator: act,
		listener: lis,
		remote:   remote,
		logger:   logger,
		clock:    clock,
	}, nil
}

// Run starts the actuator in the background and blocks in the listener
// until the stop key, the end of the key stream, ctx cancellation, or an
// actuator failure. The actuator goroutine is cancelled but not awaited.
func (j *Jiggler) Run(ctx context.Context) (Summary, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := j.clock()
	actErr := make(chan error, 1)
	go func() {
		if err := j.actuator.Run(runCtx); err != nil {
			actErr <- err
			cancel()
		}
	}()

	j.logger.Info("jiggle ready",
		"toggle", j.listener.ToggleKey(),
		"stop", j.listener.StopKey(),
		"period", j.actuator.Period(),
	)
	reason, lisErr := j.listener.Run(runCtx)
	cancel()

	summary := j.summary(reason, j.clock().Sub(start))

	select {
	case err := <-actErr:
		return summary, fmt.Errorf("actuator: %w", err)
	default:
	}
	if lisErr != nil {
		return summary, fmt.Errorf("listener: %w", lisErr)
	}
	j.logger.Info("jiggle stopped", "reason", reason, "moves", summary.Moves, "toggles", summary.Toggles)
	return summary, nil
}

// Status returns a live snapshot.
func (j *Jiggler) Status() Status {
	stats := j.actuator.Stats()
	return Status{
		Active:    j.flag.Active(),
		Ticks:     stats.Ticks,
		Moves:     stats.Moves,
		NextStep:  stats.NextStep,
		Toggles:   j.listener.Toggles(),
		ToggleKey: j.listener.ToggleKey(),
		StopKey:   j.listener.StopKey(),
	}
}

// Toggle injects a press of the toggle key.
func (j *Jiggler) Toggle(ctx context.Context) error {
	if j.remote == nil {
		return ErrNoRemote
	}
	return j.remote.Press(ctx, j.listener.ToggleKey())
}

// Stop injects a press of the stop key.
func (j *Jiggler) Stop(ctx context.Context) error {
	if j.remote == nil {
		return ErrNoRemote
	}
	return j.remote.Press(ctx, j.listener.StopKey())
}

func (j *Jiggler) summary(reason listener.Reason, elapsed time.Duration) Summary {
	stats := j.actuator.Stats()
	return Summary{
		StoppedBy: reason,
		Active:    j.flag.Active(),
		Ticks:     stats.Ticks,
		Moves:     stats.Moves,
		Toggles:   j.listener.Toggles(),
		Elapsed:   fmt.Sprintf("%.1fs", elapsed.Seconds()),
	}
}
