//go:build !ebiten

package app

import (
	"errors"

	"github.com/san-kum/lifesim/internal/session"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: window support requires building with -tags ebiten")

func Run(*session.Session, Options) error {
	return ErrNoGUI
}
