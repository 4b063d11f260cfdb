//go:build cgo

package robot

import (
	"context"
	"errors"
	"sync"

	"github.com/mj1618/jiggle-cli/internal/platform"
	hook "github.com/robotn/gohook"
)

var errAlreadyRunning = errors.New("global key hook already running")

// KeySource streams global keyboard events from gohook.
// gohook runs a single process-wide hook, so only one subscription may be
// active at a time.
type KeySource struct {
	mu      sync.Mutex
	running bool
	done    chan struct{}
	once    sync.Once
}

// NewKeySource returns a gohook-backed key source.
func NewKeySource() *KeySource {
	return &KeySource{done: make(chan struct{})}
}

// Events starts the hook and forwards keyboard events. Mouse events are
// dropped here; key presses arrive as gohook KeyHold events.
func (s *KeySource) Events(ctx context.Context) (<-chan platform.KeyEvent, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, errAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	raw := hook.Start()
	out := make(chan platform.KeyEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				_ = s.Close()
				return
			case <-s.done:
				return
			case ev, ok := <-raw:
				if !ok {
					return
				}
				ke, keep := convertEvent(ev)
				if !keep {
					continue
				}
				select {
				case out <- ke:
				case <-ctx.Done():
					_ = s.Close()
					return
				case <-s.done:
					return
				}
			}
		}
	}()
	return out, nil
}

// Close stops the hook.
func (s *KeySource) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		running := s.running
		s.mu.Unlock()
		if running {
			hook.End()
		}
	})
	return nil
}

// convertEvent maps a gohook event to a key event. libuiohook reports a key
// as pressed (KeyHold), then typed (KeyDown) for printable keys, then
// released (KeyUp); only the first counts as a press.
func convertEvent(ev hook.Event) (platform.KeyEvent, bool) {
	var kind platform.KeyKind
	switch ev.Kind {
	case hook.KeyHold:
		kind = platform.KeyPress
	case hook.KeyUp:
		kind = platform.KeyRelease
	case hook.KeyDown:
		kind = platform.KeyOther
	default:
		return platform.KeyEvent{}, false
	}
	key, err := decodeKey(ev.Keycode)
	return platform.KeyEvent{Kind: kind, Key: key, Err: err}, true
}
