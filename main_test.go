package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"modkeys/hotkey"
	"modkeys/modifiers"
)

func TestWatchHotkeyStopsOnUnregister(t *testing.T) {
	bind := modifiers.Of(modifiers.Control, modifiers.Shift)
	fk := hotkey.NewFake(bind)

	msgs := make(chan tea.Msg, 4)
	done := make(chan struct{})
	go func() {
		watchHotkey(fk, bind, func(msg tea.Msg) { msgs <- msg })
		close(done)
	}()

	fk.SimKeydown()
	select {
	case msg := <-msgs:
		if hm, ok := msg.(HotkeyMsg); !ok || hm.Mods != bind {
			t.Errorf("got %#v, want HotkeyMsg{%s}", msg, bind)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for HotkeyMsg")
	}

	fk.Unregister()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchHotkey still running after Unregister")
	}
}
