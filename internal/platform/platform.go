package platform

import "context"

// PointerMover moves the system cursor relative to its current position.
type PointerMover interface {
	MoveRelative(dx, dy int) error
}

// MoverFunc adapts a function literal to the PointerMover interface.
type MoverFunc func(dx, dy int) error

// MoveRelative calls the underlying function.
func (f MoverFunc) MoveRelative(dx, dy int) error {
	return f(dx, dy)
}

// KeySource delivers global keyboard events regardless of window focus.
type KeySource interface {
	// Events subscribes to the event stream. The returned channel is closed
	// when ctx is done or the source stops delivering events.
	Events(ctx context.Context) (<-chan KeyEvent, error)

	// Close stops delivering events. It is safe to call more than once.
	Close() error
}
