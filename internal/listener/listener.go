// Package listener turns global key presses into activation toggles and the
// stop signal.
package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mj1618/jiggle-cli/internal/logging"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/mj1618/jiggle-cli/internal/state"
)

// Outcome is what handling a single event did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeToggled
	OutcomeStop
)

func (o Outcome) String() string {
	switch o {
	case OutcomeToggled:
		return "toggled"
	case OutcomeStop:
		return "stop"
	default:
		return "ignored"
	}
}

// Reason explains why Run returned.
type Reason string

const (
	ReasonStopKey      Reason = "stop_key"
	ReasonSourceClosed Reason = "source_closed"
	ReasonCancelled    Reason = "cancelled"
)

// Options configures the two hotkeys.
type Options struct {
	ToggleKey platform.Key
	StopKey   platform.Key
	Logger    *slog.Logger
}

// Listener is the only writer of the activation flag.
type Listener struct {
	flag    *state.Flag
	source  platform.KeySource
	toggle  platform.Key
	stop    platform.Key
	logger  *slog.Logger
	toggles atomic.Int64
}

// New validates opts and creates a listener.
func New(flag *state.Flag, source platform.KeySource, opts Options) (*Listener, error) {
	if flag == nil {
		return nil, errors.New("listener: nil flag")
	}
	if source == nil {
		return nil, errors.New("listener: nil key source")
	}
	if opts.ToggleKey == "" || opts.StopKey == "" {
		return nil, errors.New("listener: toggle and stop keys are required")
	}
	if opts.ToggleKey == opts.StopKey {
		return nil, fmt.Errorf("listener: toggle and stop keys are both %q", opts.ToggleKey)
	}
	return &Listener{
		flag:   flag,
		source: source,
		toggle: opts.ToggleKey,
		stop:   opts.StopKey,
		logger: logging.OrDiscard(opts.Logger),
	}, nil
}

// Handle applies one event. Non-press events, undecodable keys and unrelated
// keys are ignored.
func (l *Listener) Handle(ev platform.KeyEvent) Outcome {
	if ev.Kind != platform.KeyPress {
		return OutcomeIgnored
	}
	if ev.Err != nil {
		l.logger.Debug("ignoring undecodable key", "err", ev.Err)
		return OutcomeIgnored
	}
	switch ev.Key {
	case l.toggle:
		active := l.flag.Toggle()
		l.toggles.Add(1)
		l.logger.Info("jiggle toggled", "active", active)
		return OutcomeToggled
	case l.stop:
		return OutcomeStop
	default:
		return OutcomeIgnored
	}
}

// Run subscribes to the key source and blocks until the stop key is pressed,
// the source ends, or ctx is cancelled. No event is handled after the stop key.
func (l *Listener) Run(ctx context.Context) (Reason, error) {
	events, err := l.source.Events(ctx)
	if err != nil {
		return "", fmt.Errorf("subscribe to key events: %w", err)
	}
	l.logger.Info("listening for keys", "toggle", l.toggle, "stop", l.stop)

	for {
		select {
		case <-ctx.Done():
			_ = l.source.Close()
			return ReasonCancelled, nil
		case ev, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return ReasonCancelled, nil
				}
				return ReasonSourceClosed, nil
			}
			if l.Handle(ev) == OutcomeStop {
				l.logger.Info("stop key pressed", "key", l.stop)
				if err := l.source.Close(); err != nil {
					l.logger.Warn("close key source", "err", err)
				}
				return ReasonStopKey, nil
			}
		}
	}
}

// Toggles returns the number of toggle-key presses handled.
func (l *Listener) Toggles() int64 {
	return l.toggles.Load()
}

// ToggleKey returns the configured toggle key.
func (l *Listener) ToggleKey() platform.Key { return l.toggle }

// StopKey returns the configured stop key.
func (l *Listener) StopKey() platform.Key { return l.stop }
