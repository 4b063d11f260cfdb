package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the host input backends for the current OS.
type Provider struct {
	Mover PointerMover
	Keys  KeySource
}

// ErrUnsupported is returned when no input backend is compiled in.
var ErrUnsupported = fmt.Errorf("jiggle has no input backend for %s/%s; build with CGO_ENABLED=1 on darwin, linux (X11) or windows", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by backend packages via init().
// See internal/platform/robot/init.go for the robotgo/gohook registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
