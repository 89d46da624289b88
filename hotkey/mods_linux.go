//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"modkeys/modifiers"
)

// X11 modifier slots as assigned by the usual xmodmap layout.
var nativeModifiers = map[modifiers.Modifier]hotkey.Modifier{
	modifiers.Control:  hotkey.ModCtrl,
	modifiers.Shift:    hotkey.ModShift,
	modifiers.Alt:      hotkey.Mod1,
	modifiers.NumLock:  hotkey.Mod2,
	modifiers.Hyper:    hotkey.Mod3,
	modifiers.Meta:     hotkey.Mod4,
	modifiers.Super:    hotkey.Mod4,
	modifiers.AltGraph: hotkey.Mod5,
}
