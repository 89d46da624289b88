//go:build !linux

package main

import (
	"runtime"

	"golang.design/x/hotkey/mainthread"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// Cocoa and Win32 hotkeys must be registered from the main thread.
	mainthread.Init(run)
}
