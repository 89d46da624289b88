// Package termkey reads the modifier set out of bubbletea key messages.
package termkey

import (
	tea "github.com/charmbracelet/bubbletea"

	"modkeys/modifiers"
)

var shiftKeys = map[tea.KeyType]bool{
	tea.KeyShiftTab:   true,
	tea.KeyShiftUp:    true,
	tea.KeyShiftDown:  true,
	tea.KeyShiftLeft:  true,
	tea.KeyShiftRight: true,
	tea.KeyShiftHome:  true,
	tea.KeyShiftEnd:   true,
}

var ctrlKeys = map[tea.KeyType]bool{
	tea.KeyCtrlUp:     true,
	tea.KeyCtrlDown:   true,
	tea.KeyCtrlLeft:   true,
	tea.KeyCtrlRight:  true,
	tea.KeyCtrlHome:   true,
	tea.KeyCtrlEnd:    true,
	tea.KeyCtrlPgUp:   true,
	tea.KeyCtrlPgDown: true,
}

var ctrlShiftKeys = map[tea.KeyType]bool{
	tea.KeyCtrlShiftUp:    true,
	tea.KeyCtrlShiftDown:  true,
	tea.KeyCtrlShiftLeft:  true,
	tea.KeyCtrlShiftRight: true,
	tea.KeyCtrlShiftHome:  true,
	tea.KeyCtrlShiftEnd:   true,
}

// FromKey returns the modifiers a terminal reported for k. Terminals only
// encode Alt, Control and Shift, and Shift only for special keys: an
// uppercase rune does not imply Shift.
func FromKey(k tea.Key) modifiers.Set {
	var s modifiers.Set
	if k.Alt {
		s = s.With(modifiers.Alt)
	}
	switch {
	case isControlCode(k.Type):
		s = s.With(modifiers.Control)
	case shiftKeys[k.Type]:
		s = s.With(modifiers.Shift)
	case ctrlKeys[k.Type]:
		s = s.With(modifiers.Control)
	case ctrlShiftKeys[k.Type]:
		s = s.Union(modifiers.Of(modifiers.Control, modifiers.Shift))
	}
	return s
}

func FromKeyMsg(msg tea.KeyMsg) modifiers.Set {
	return FromKey(tea.Key(msg))
}

// C0 codes are ctrl+@ through ctrl+_, minus the ones that have their own key.
func isControlCode(t tea.KeyType) bool {
	if t < tea.KeyCtrlAt || t > tea.KeyCtrlUnderscore {
		return false
	}
	switch t {
	case tea.KeyTab, tea.KeyEnter, tea.KeyEsc:
		return false
	}
	return true
}
