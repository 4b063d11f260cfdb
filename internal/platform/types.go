package platform

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// KeyKind distinguishes press events from everything else a hook reports.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyPress
	KeyRelease
)

func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRelease:
		return "release"
	default:
		return "other"
	}
}

// Key is a canonical, lower-case key name such as "num_lock" or "esc".
type Key string

// KeyEvent is a single global keyboard event.
// Err is set when the backend could not identify the key; Key is then empty.
type KeyEvent struct {
	Kind KeyKind
	Key  Key
	Err  error
}

// Named keys understood by every backend.
const (
	KeyEsc        Key = "esc"
	KeyNumLock    Key = "num_lock"
	KeyCapsLock   Key = "caps_lock"
	KeyScrollLock Key = "scroll_lock"
	KeyPause      Key = "pause"
	KeyInsert     Key = "insert"
	KeyDelete     Key = "delete"
	KeyHome       Key = "home"
	KeyEnd        Key = "end"
	KeyPageUp     Key = "page_up"
	KeyPageDown   Key = "page_down"
	KeyPrintScr   Key = "print_screen"
	KeyTab        Key = "tab"
	KeyEnter      Key = "enter"
	KeySpace      Key = "space"
	KeyBackspace  Key = "backspace"
	KeyArrowUp    Key = "up"
	KeyArrowDown  Key = "down"
	KeyArrowLeft  Key = "left"
	KeyArrowRight Key = "right"
)

// Function keys and printable characters complete the set of names a backend may report.
const (
	functionKeyCount = 12
	printableKeys    = "abcdefghijklmnopqrstuvwxyz0123456789`-=[]\\;',./"
)

var knownKeys = buildKnownKeys()

func buildKnownKeys() map[Key]bool {
	known := map[Key]bool{}
	for _, k := range []Key{
		KeyEsc, KeyNumLock, KeyCapsLock, KeyScrollLock, KeyPause, KeyInsert,
		KeyDelete, KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyPrintScr,
		KeyTab, KeyEnter, KeySpace, KeyBackspace, KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight,
	} {
		known[k] = true
	}
	for i := 1; i <= functionKeyCount; i++ {
		known[Key(fmt.Sprintf("f%d", i))] = true
	}
	for _, r := range printableKeys {
		known[Key(string(r))] = true
	}
	return known
}

// KnownKey reports whether k is a name the input backends can report.
func KnownKey(k Key) bool {
	return knownKeys[k]
}

// NamedKeys returns every known key name, sorted.
func NamedKeys() []Key {
	keys := make([]Key, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// keyAliases maps alternative spellings to canonical names.
var keyAliases = map[string]Key{
	"escape":      KeyEsc,
	"numlock":     KeyNumLock,
	"capslock":    KeyCapsLock,
	"caps":        KeyCapsLock,
	"scrolllock":  KeyScrollLock,
	"break":       KeyPause,
	"ins":         KeyInsert,
	"del":         KeyDelete,
	"pageup":      KeyPageUp,
	"pgup":        KeyPageUp,
	"pagedown":    KeyPageDown,
	"pgdn":        KeyPageDown,
	"printscreen": KeyPrintScr,
	"prtsc":       KeyPrintScr,
	"return":      KeyEnter,
	"spacebar":    KeySpace,
	"bksp":        KeyBackspace,
	"arrowup":     KeyArrowUp,
	"arrowdown":   KeyArrowDown,
	"arrowleft":   KeyArrowLeft,
	"arrowright":  KeyArrowRight,
}

// ParseKey converts a flag or config value to a canonical Key.
// Separators (space, dash, underscore) are normalised to underscores, so
// "Num Lock", "num-lock" and "numlock" all resolve to KeyNumLock.
// Names that are not aliases are returned as-is in lower case.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return "", fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		return Key(name), nil
	}
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	if k, ok := keyAliases[name]; ok {
		return k, nil
	}
	if k, ok := keyAliases[strings.ReplaceAll(name, "_", "")]; ok {
		return k, nil
	}
	return Key(name), nil
}

// KeyAliases returns alias → canonical name pairs, sorted by alias.
func KeyAliases() [][2]string {
	out := make([][2]string, 0, len(keyAliases))
	for alias, k := range keyAliases {
		out = append(out, [2]string{alias, string(k)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
