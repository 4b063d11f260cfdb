//go:build cgo

package robot

import "github.com/go-vgo/robotgo"

// Mover moves the system cursor with robotgo.
type Mover struct{}

// NewMover returns a robotgo-backed pointer mover.
func NewMover() *Mover {
	return &Mover{}
}

// MoveRelative shifts the cursor by (dx, dy) from its current position.
func (m *Mover) MoveRelative(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}
