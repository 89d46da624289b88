//go:build windows

// Package shutdown relays the termination signals of the host OS.
package shutdown

import (
	"os"
	"os/signal"
)

// Notify relays Ctrl+C / Ctrl+Break to ch. Windows has no SIGTERM.
func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
