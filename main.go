package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/micmonay/keybd_event"
	xhotkey "golang.design/x/hotkey"
	"golang.org/x/term"

	"modkeys/clipboard"
	"modkeys/doctor"
	"modkeys/hotkey"
	"modkeys/log"
	"modkeys/modifiers"
	"modkeys/press"
	"modkeys/shutdown"
)

var version = "dev"

func run() {
	bindFlag := flag.String("bind", "CONTROL | SHIFT", "Modifiers for the global Space hotkey (e.g. \"ctrl+shift\", \"META\", \"0x208\")")
	noHotkeyFlag := flag.Bool("nohotkey", false, "Do not register the global hotkey")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("modkeys %s\n", version)
		os.Exit(0)
	}

	bind, err := modifiers.Parse(*bindFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -bind: %v\n", err)
		os.Exit(2)
	}

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *doctorFlag {
		os.Exit(doctor.Run(bind))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: modkeys needs an interactive terminal (stdin is not a TTY)")
		os.Exit(1)
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()
	log.SessionStart(version, bind)

	m := newTUIModel(bind)
	m.copy = clipboard.Copy
	m.inject = func(s modifiers.Set) error {
		return press.Send(s, keybd_event.VK_SPACE)
	}

	var hk hotkey.Hotkey
	if !*noHotkeyFlag {
		hk, err = registerHotkey(bind)
		if err != nil {
			log.Warnf("global hotkey unavailable: %v", err)
			m.status = fmt.Sprintf("global hotkey unavailable: %v", err)
		} else {
			defer hk.Unregister()
		}
	}

	tuiProgram = tea.NewProgram(m, tea.WithAltScreen())
	if hk != nil {
		go watchHotkey(hk, bind, tuiProgram.Send)
	}

	sigCh := make(chan os.Signal, 1)
	shutdown.Notify(sigCh)
	go func() {
		<-sigCh
		tuiProgram.Quit()
	}()

	final, err := tuiProgram.Run()
	if err != nil {
		log.Errorf("tui: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if fm, ok := final.(tuiModel); ok {
		log.SessionEnd(fm.total)
	}
}

func registerHotkey(bind modifiers.Set) (hotkey.Hotkey, error) {
	hk, err := hotkey.New(bind, xhotkey.KeySpace)
	if err != nil {
		return nil, err
	}
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register %s: %w", bind, err)
	}
	return hk, nil
}

// watchHotkey relays hotkey presses to send until hk is unregistered.
func watchHotkey(hk hotkey.Hotkey, bind modifiers.Set, send func(tea.Msg)) {
	for range hk.Keydown() {
		log.HotkeyFired(bind)
		send(HotkeyMsg{Mods: bind})
	}
}
