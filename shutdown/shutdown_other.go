//go:build !windows

// Package shutdown relays the termination signals of the host OS.
package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify relays interrupt and SIGTERM to ch.
func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}
