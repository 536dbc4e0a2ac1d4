//go:build unix

// Package daemon detaches the current process from its controlling
// terminal by re-executing the binary in a new session, the Go rendition
// of the classic fork/setsid dance.
package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// childEnv marks the re-executed child so it does not detach again.
const childEnv = "SHROUD_DETACHED"

// Daemonize re-runs the current binary detached: new session, working
// directory reset to the system temp dir, standard streams redirected to
// the null device. On success the parent exits and only the child
// returns. On failure an error is returned and the process stays in the
// foreground.
func Daemonize() error {
	if os.Getenv(childEnv) == "1" {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening %s: %w", os.DevNull, err)
	}
	defer devnull.Close()

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Env = append(os.Environ(), childEnv+"=1")
	cmd.Dir = os.TempDir()
	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning detached process: %w", err)
	}
	os.Exit(0)
	return nil
}
