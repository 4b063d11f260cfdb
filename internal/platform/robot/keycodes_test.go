package robot

import (
	"errors"
	"testing"

	"github.com/mj1618/jiggle-cli/internal/platform"
)

func TestDecodeKey_VirtualCodes(t *testing.T) {
	tests := []struct {
		code uint16
		want platform.Key
	}{
		{0x0001, platform.KeyEsc},
		{0x0045, platform.KeyNumLock},
		{0x0043, "f9"},
		{0x0058, "f12"},
		{0x0E45, platform.KeyPause},
		{0xE050, platform.KeyArrowDown},
		{0x001E, "a"}, // VC_A; the raw code differs per OS
		{0x0002, "1"},
		{0x0035, "/"},
		{0x000C, "-"},
	}
	for _, tt := range tests {
		got, err := decodeKey(tt.code)
		if err != nil {
			t.Errorf("decodeKey(%#x): %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("decodeKey(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDecodeKey_Undecodable(t *testing.T) {
	for _, code := range []uint16{0x0000, 0xffff, 0x0E5B} {
		k, err := decodeKey(code)
		if !errors.Is(err, ErrUndecodableKey) {
			t.Errorf("decodeKey(%#x): expected ErrUndecodableKey, got %q, %v", code, k, err)
		}
	}
}

// Every name the backend can report must be accepted as a hotkey, and every
// accepted hotkey must be reportable, or a configured key could never fire.
func TestVirtualKeys_MatchKnownKeys(t *testing.T) {
	decoded := map[platform.Key]bool{}
	for code, k := range virtualKeys {
		if decoded[k] {
			t.Errorf("key %q mapped from more than one code (latest %#x)", k, code)
		}
		decoded[k] = true
		if !platform.KnownKey(k) {
			t.Errorf("code %#x decodes to %q, which config would reject", code, k)
		}
	}
	for _, k := range platform.NamedKeys() {
		if !decoded[k] {
			t.Errorf("known key %q has no virtual code", k)
		}
	}
}
