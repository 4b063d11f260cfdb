package listener

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/mj1618/jiggle-cli/internal/state"
	"github.com/stretchr/testify/require"
)

func newListener(t *testing.T, src platform.KeySource) (*Listener, *state.Flag) {
	t.Helper()
	flag := state.NewFlag()
	l, err := New(flag, src, Options{ToggleKey: platform.KeyNumLock, StopKey: platform.KeyEsc})
	require.NoError(t, err)
	return l, flag
}

func press(k platform.Key) platform.KeyEvent {
	return platform.KeyEvent{Kind: platform.KeyPress, Key: k}
}

func TestNew_Validation(t *testing.T) {
	src := platform.NewChannelSource(1)
	flag := state.NewFlag()
	opts := Options{ToggleKey: platform.KeyNumLock, StopKey: platform.KeyEsc}

	_, err := New(nil, src, opts)
	require.Error(t, err)
	_, err = New(flag, nil, opts)
	require.Error(t, err)
	_, err = New(flag, src, Options{ToggleKey: platform.KeyNumLock})
	require.Error(t, err)
	_, err = New(flag, src, Options{ToggleKey: platform.KeyEsc, StopKey: platform.KeyEsc})
	require.Error(t, err)
}

func TestHandle_ToggleParity(t *testing.T) {
	l, flag := newListener(t, platform.NewChannelSource(1))
	for n := 1; n <= 8; n++ {
		require.Equal(t, OutcomeToggled, l.Handle(press(platform.KeyNumLock)))
		require.Equal(t, n%2 == 1, flag.Active(), "after %d toggles", n)
	}
	require.EqualValues(t, 8, l.Toggles())
}

func TestHandle_IgnoresUnrelatedKeys(t *testing.T) {
	l, flag := newListener(t, platform.NewChannelSource(1))
	for i := 0; i < 5; i++ {
		require.Equal(t, OutcomeIgnored, l.Handle(press("a")))
	}
	require.False(t, flag.Active())
	require.Zero(t, l.Toggles())
}

func TestHandle_IgnoresNonPressEvents(t *testing.T) {
	l, flag := newListener(t, platform.NewChannelSource(1))
	require.Equal(t, OutcomeIgnored, l.Handle(platform.KeyEvent{Kind: platform.KeyRelease, Key: platform.KeyNumLock}))
	require.Equal(t, OutcomeIgnored, l.Handle(platform.KeyEvent{Kind: platform.KeyOther, Key: platform.KeyEsc}))
	require.False(t, flag.Active())
}

func TestHandle_SwallowsUndecodableKeys(t *testing.T) {
	l, flag := newListener(t, platform.NewChannelSource(1))
	ev := platform.KeyEvent{Kind: platform.KeyPress, Err: errors.New("unknown keycode 0xffff")}
	require.Equal(t, OutcomeIgnored, l.Handle(ev))
	require.False(t, flag.Active())
}

func TestHandle_StopKey(t *testing.T) {
	l, flag := newListener(t, platform.NewChannelSource(1))
	require.Equal(t, OutcomeStop, l.Handle(press(platform.KeyEsc)))
	require.False(t, flag.Active())
}

func runAsync(ctx context.Context, l *Listener) <-chan Reason {
	done := make(chan Reason, 1)
	go func() {
		reason, _ := l.Run(ctx)
		done <- reason
	}()
	return done
}

func waitReason(t *testing.T, done <-chan Reason) Reason {
	t.Helper()
	select {
	case r := <-done:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not return")
		return ""
	}
}

func TestRun_StopKeyHaltsProcessing(t *testing.T) {
	src := platform.NewChannelSource(8)
	l, flag := newListener(t, src)
	ctx := context.Background()

	require.NoError(t, src.Press(ctx, platform.KeyNumLock))
	require.NoError(t, src.Press(ctx, platform.KeyEsc))
	require.NoError(t, src.Press(ctx, platform.KeyNumLock))

	require.Equal(t, ReasonStopKey, waitReason(t, runAsync(ctx, l)))
	require.True(t, flag.Active(), "toggle after stop must not be applied")
	require.EqualValues(t, 1, l.Toggles())

	// The source is closed, so nothing can reach the flag any more.
	require.ErrorIs(t, src.Press(ctx, platform.KeyNumLock), platform.ErrSourceClosed)
}

func TestRun_StopImmediately(t *testing.T) {
	src := platform.NewChannelSource(1)
	l, flag := newListener(t, src)
	require.NoError(t, src.Press(context.Background(), platform.KeyEsc))

	require.Equal(t, ReasonStopKey, waitReason(t, runAsync(context.Background(), l)))
	require.False(t, flag.Active())
}

func TestRun_SourceClosed(t *testing.T) {
	src := platform.NewChannelSource(1)
	l, _ := newListener(t, src)
	done := runAsync(context.Background(), l)

	require.NoError(t, src.Close())
	require.Equal(t, ReasonSourceClosed, waitReason(t, done))
}

func TestRun_Cancelled(t *testing.T) {
	src := platform.NewChannelSource(1)
	l, _ := newListener(t, src)
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, l)

	cancel()
	require.Equal(t, ReasonCancelled, waitReason(t, done))
}

type failingSource struct{ err error }

func (f failingSource) Events(context.Context) (<-chan platform.KeyEvent, error) { return nil, f.err }
func (f failingSource) Close() error                                             { return nil }

func TestRun_SubscribeError(t *testing.T) {
	boom := errors.New("hook unavailable")
	l, _ := newListener(t, failingSource{err: boom})
	_, err := l.Run(context.Background())
	require.ErrorIs(t, err, boom)
}
