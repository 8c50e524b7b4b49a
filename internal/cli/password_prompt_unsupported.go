//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import (
	"errors"
	"os"
)

// Echo stays on where the terminal cannot be controlled.
func disableEcho(_ *os.File) (func(), error) {
	return nil, errors.New("unsupported platform")
}
