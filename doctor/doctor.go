package doctor

import (
	"fmt"
	"os"
	"strings"
	"time"

	xhotkey "golang.design/x/hotkey"

	"modkeys/clipboard"
	"modkeys/hotkey"
	"modkeys/modifiers"
	"modkeys/press"
	"modkeys/shutdown"
)

// Run executes interactive diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(bind modifiers.Set) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("modkeys doctor - interactive system diagnostics")
	fmt.Println("===============================================")

	allPass := true

	if !checkHotkey(bind) {
		allPass = false
	}
	if !checkPress() {
		allPass = false
	}
	if !checkClipboard(bind) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		println("\nInterrupted")
		os.Exit(1)
	}()
}

func label(s modifiers.Set) string {
	if s.IsEmpty() {
		return "Space"
	}
	return strings.ReplaceAll(s.String(), " | ", "+") + "+Space"
}

func checkHotkey(bind modifiers.Set) bool {
	fmt.Println()
	fmt.Println("[1/3] Hotkey detection")

	hk, err := hotkey.New(bind, xhotkey.KeySpace)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		fmt.Printf("  Supported on this platform: %s\n", hotkey.Supported())
		return false
	}
	if err := hk.Register(); err != nil {
		fmt.Printf("  FAIL: could not register hotkey: %v\n", err)
		return false
	}
	defer hk.Unregister()

	fmt.Printf("Press %s...\n", label(bind))
	select {
	case <-hk.Keydown():
		fmt.Println("  PASS: hotkey detected")
		select {
		case <-hk.Keyup():
		case <-time.After(5 * time.Second):
		}
		resetTerminal()
		return true
	case <-time.After(10 * time.Second):
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
}

func checkPress() bool {
	fmt.Println()
	fmt.Println("[2/3] Key injection")

	if err := press.Init(); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		fmt.Println("  On Linux fix with: sudo chmod 660 /dev/uinput && sudo chgrp input /dev/uinput")
		return false
	}
	fmt.Printf("  PASS: key bonding initialized (injectable: %s)\n", press.Supported)
	return true
}

func checkClipboard(bind modifiers.Set) bool {
	fmt.Println()
	fmt.Println("[3/3] Clipboard copy")

	if clipboard.Unsupported() {
		fmt.Println("  FAIL: no clipboard utility found (install xclip, xsel or wl-clipboard)")
		return false
	}

	text := bind.String()
	if err := clipboard.Copy(text); err != nil {
		fmt.Printf("  FAIL: clipboard write failed: %v\n", err)
		return false
	}
	got, err := clipboard.Read()
	if err != nil {
		fmt.Printf("  FAIL: clipboard read failed: %v\n", err)
		return false
	}
	back, err := modifiers.Parse(got)
	if err != nil || back != bind {
		fmt.Printf("  FAIL: clipboard mismatch: wrote %q, got %q\n", text, got)
		return false
	}

	fmt.Println("  PASS: clipboard write/read verified")
	return true
}
