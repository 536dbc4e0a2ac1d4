//go:build !unix

package daemon

import "errors"

// Daemonize is not available on this platform.
func Daemonize() error {
	return errors.New("daemonize is only supported on unix")
}
