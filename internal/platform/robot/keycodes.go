package robot

import (
	"errors"
	"fmt"

	"github.com/mj1618/jiggle-cli/internal/platform"
)

// ErrUndecodableKey is reported for key events whose code has no name.
var ErrUndecodableKey = errors.New("undecodable key")

// Virtual key codes reported by libuiohook, the C library under gohook.
// These are the same on every OS, unlike the raw codes, which are X keysyms
// on Linux and kVK codes on macOS.
var virtualKeys = map[uint16]platform.Key{
	0x0001: platform.KeyEsc,
	0x000E: platform.KeyBackspace,
	0x000F: platform.KeyTab,
	0x001C: platform.KeyEnter,
	0x0039: platform.KeySpace,
	0x003A: platform.KeyCapsLock,
	0x003B: "f1",
	0x003C: "f2",
	0x003D: "f3",
	0x003E: "f4",
	0x003F: "f5",
	0x0040: "f6",
	0x0041: "f7",
	0x0042: "f8",
	0x0043: "f9",
	0x0044: "f10",
	0x0057: "f11",
	0x0058: "f12",
	0x0045: platform.KeyNumLock,
	0x0046: platform.KeyScrollLock,
	0x0E37: platform.KeyPrintScr,
	0x0E45: platform.KeyPause,
	0x0E47: platform.KeyHome,
	0x0E49: platform.KeyPageUp,
	0x0E4F: platform.KeyEnd,
	0x0E51: platform.KeyPageDown,
	0x0E52: platform.KeyInsert,
	0x0E53: platform.KeyDelete,
	0xE048: platform.KeyArrowUp,
	0xE04B: platform.KeyArrowLeft,
	0xE04D: platform.KeyArrowRight,
	0xE050: platform.KeyArrowDown,

	0x0029: "`",
	0x0002: "1",
	0x0003: "2",
	0x0004: "3",
	0x0005: "4",
	0x0006: "5",
	0x0007: "6",
	0x0008: "7",
	0x0009: "8",
	0x000A: "9",
	0x000B: "0",
	0x000C: "-",
	0x000D: "=",

	0x0010: "q",
	0x0011: "w",
	0x0012: "e",
	0x0013: "r",
	0x0014: "t",
	0x0015: "y",
	0x0016: "u",
	0x0017: "i",
	0x0018: "o",
	0x0019: "p",
	0x001A: "[",
	0x001B: "]",
	0x002B: "\\",

	0x001E: "a",
	0x001F: "s",
	0x0020: "d",
	0x0021: "f",
	0x0022: "g",
	0x0023: "h",
	0x0024: "j",
	0x0025: "k",
	0x0026: "l",
	0x0027: ";",
	0x0028: "'",

	0x002C: "z",
	0x002D: "x",
	0x002E: "c",
	0x002F: "v",
	0x0030: "b",
	0x0031: "n",
	0x0032: "m",
	0x0033: ",",
	0x0034: ".",
	0x0035: "/",
}

// decodeKey names a key from its libuiohook virtual code.
func decodeKey(keycode uint16) (platform.Key, error) {
	if k, ok := virtualKeys[keycode]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: keycode %#04x", ErrUndecodableKey, keycode)
}
