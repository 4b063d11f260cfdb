package platform

import (
	"context"
	"errors"
	"sync"
)

// ErrSourceClosed is returned by Send after Close.
var ErrSourceClosed = errors.New("key source closed")

// ChannelSource is an in-memory KeySource fed by Send.
// It backs the remote-control bridge and stands in for the host hook in tests.
type ChannelSource struct {
	ch        chan KeyEvent
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelSource creates a source that buffers up to size events.
func NewChannelSource(size int) *ChannelSource {
	return &ChannelSource{
		ch:   make(chan KeyEvent, size),
		done: make(chan struct{}),
	}
}

// Send queues an event. It blocks while the buffer is full and fails once the
// source is closed or ctx is done.
func (s *ChannelSource) Send(ctx context.Context, ev KeyEvent) error {
	select {
	case <-s.done:
		return ErrSourceClosed
	default:
	}
	select {
	case s.ch <- ev:
		return nil
	case <-s.done:
		return ErrSourceClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Press is a shorthand for sending a press event for k.
func (s *ChannelSource) Press(ctx context.Context, k Key) error {
	return s.Send(ctx, KeyEvent{Kind: KeyPress, Key: k})
}

// Events forwards queued events until ctx is done or Close is called.
// Subscribing to a closed source yields an already-closed stream.
func (s *ChannelSource) Events(ctx context.Context) (<-chan KeyEvent, error) {
	out := make(chan KeyEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-s.done:
				return
			default:
			}
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case ev := <-s.ch:
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-s.done:
					return
				}
			}
		}
	}()
	return out, nil
}

// Close stops delivering events.
func (s *ChannelSource) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// multiSource fans several sources into one subscription.
type multiSource struct {
	sources []KeySource
}

// MergeSources returns a KeySource delivering events from all given sources.
// The merged stream ends when every underlying stream has ended.
// Nil sources are skipped.
func MergeSources(sources ...KeySource) KeySource {
	var live []KeySource
	for _, s := range sources {
		if s != nil {
			live = append(live, s)
		}
	}
	if len(live) == 1 {
		return live[0]
	}
	return &multiSource{sources: live}
}

func (m *multiSource) Events(ctx context.Context) (<-chan KeyEvent, error) {
	chans := make([]<-chan KeyEvent, 0, len(m.sources))
	for _, s := range m.sources {
		ch, err := s.Events(ctx)
		if err != nil {
			for _, started := range m.sources[:len(chans)] {
				_ = started.Close()
			}
			return nil, err
		}
		chans = append(chans, ch)
	}

	out := make(chan KeyEvent)
	var wg sync.WaitGroup
	for _, ch := range chans {
		wg.Add(1)
		go func(ch <-chan KeyEvent) {
			defer wg.Done()
			for ev := range ch {
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}(ch)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out, nil
}

func (m *multiSource) Close() error {
	var errs []error
	for _, s := range m.sources {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
