//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"modkeys/modifiers"
)

var nativeModifiers = map[modifiers.Modifier]hotkey.Modifier{
	modifiers.Control: hotkey.ModCtrl,
	modifiers.Shift:   hotkey.ModShift,
	modifiers.Alt:     hotkey.ModOption,
	modifiers.Meta:    hotkey.ModCmd,
	modifiers.Super:   hotkey.ModCmd,
}
