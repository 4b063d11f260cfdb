//go:build cgo

package robot

import (
	"errors"
	"testing"

	"github.com/mj1618/jiggle-cli/internal/platform"
	hook "github.com/robotn/gohook"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       hook.Event
		keep     bool
		wantKind platform.KeyKind
		wantKey  platform.Key
		wantErr  error
	}{
		{"press", hook.Event{Kind: hook.KeyHold, Keycode: 0x0045}, true, platform.KeyPress, platform.KeyNumLock, nil},
		{"typed is not a press", hook.Event{Kind: hook.KeyDown, Keycode: 0x001E, Keychar: 'a'}, true, platform.KeyOther, "a", nil},
		{"release", hook.Event{Kind: hook.KeyUp, Keycode: 0x0001}, true, platform.KeyRelease, platform.KeyEsc, nil},
		{"printable ignores rawcode", hook.Event{Kind: hook.KeyHold, Keycode: 0x001E, Rawcode: 0x61}, true, platform.KeyPress, "a", nil},
		{"undecodable", hook.Event{Kind: hook.KeyHold, Keycode: 0x0000}, true, platform.KeyPress, "", ErrUndecodableKey},
		{"mouse down dropped", hook.Event{Kind: hook.MouseDown, Button: 1}, false, 0, "", nil},
		{"mouse move dropped", hook.Event{Kind: hook.MouseMove, X: 10, Y: 10}, false, 0, "", nil},
	}
	for _, tt := range tests {
		got, keep := convertEvent(tt.ev)
		if keep != tt.keep {
			t.Errorf("%s: keep = %v, want %v", tt.name, keep, tt.keep)
			continue
		}
		if !keep {
			continue
		}
		if got.Kind != tt.wantKind {
			t.Errorf("%s: kind = %s, want %s", tt.name, got.Kind, tt.wantKind)
		}
		if got.Key != tt.wantKey {
			t.Errorf("%s: key = %q, want %q", tt.name, got.Key, tt.wantKey)
		}
		if tt.wantErr == nil && got.Err != nil {
			t.Errorf("%s: unexpected err %v", tt.name, got.Err)
		}
		if tt.wantErr != nil && !errors.Is(got.Err, tt.wantErr) {
			t.Errorf("%s: err = %v, want %v", tt.name, got.Err, tt.wantErr)
		}
	}
}

// A full keystroke must produce exactly one press.
func TestConvertEvent_OnePressPerKeystroke(t *testing.T) {
	presses := 0
	for _, kind := range []uint8{hook.KeyHold, hook.KeyDown, hook.KeyUp} {
		ev, keep := convertEvent(hook.Event{Kind: kind, Keycode: 0x0045})
		if keep && ev.Kind == platform.KeyPress {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("presses per keystroke = %d, want 1", presses)
	}
}
