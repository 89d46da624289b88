//go:build linux

package hotkey

import (
	"slices"
	"testing"

	"golang.design/x/hotkey"

	"modkeys/modifiers"
)

func TestNativeLinux(t *testing.T) {
	tests := []struct {
		set  modifiers.Set
		want []hotkey.Modifier
	}{
		{modifiers.Of(modifiers.Control, modifiers.Shift), []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}},
		{modifiers.Of(modifiers.Alt, modifiers.Super), []hotkey.Modifier{hotkey.Mod1, hotkey.Mod4}},
		{modifiers.Of(modifiers.AltGraph, modifiers.NumLock, modifiers.Hyper), []hotkey.Modifier{hotkey.Mod5, hotkey.Mod2, hotkey.Mod3}},
	}
	for _, tt := range tests {
		got, err := Native(tt.set)
		if err != nil {
			t.Errorf("Native(%q): %v", tt.set, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Native(%q) = %v, want %v", tt.set, got, tt.want)
		}
	}
}
