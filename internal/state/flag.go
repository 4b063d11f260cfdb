// Package state holds the activation flag shared by the actuator and the
// key listener.
package state

import "sync/atomic"

// Flag is the process-wide activation switch. The zero value is inactive.
// One goroutine toggles it; any number may read it.
type Flag struct {
	on atomic.Bool
}

// NewFlag returns an inactive flag.
func NewFlag() *Flag {
	return &Flag{}
}

// Active reports the current value.
func (f *Flag) Active() bool {
	return f.on.Load()
}

// Toggle inverts the flag and returns the new value.
func (f *Flag) Toggle() bool {
	for {
		old := f.on.Load()
		if f.on.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
