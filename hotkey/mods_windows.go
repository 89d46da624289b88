//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"modkeys/modifiers"
)

var nativeModifiers = map[modifiers.Modifier]hotkey.Modifier{
	modifiers.Control: hotkey.ModCtrl,
	modifiers.Shift:   hotkey.ModShift,
	modifiers.Alt:     hotkey.ModAlt,
	modifiers.Meta:    hotkey.ModWin,
	modifiers.Super:   hotkey.ModWin,
}
