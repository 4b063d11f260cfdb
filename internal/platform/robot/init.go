//go:build cgo

package robot

import "github.com/mj1618/jiggle-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Mover: NewMover(),
			Keys:  NewKeySource(),
		}, nil
	}
}
