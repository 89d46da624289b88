package hotkey

import (
	"errors"
	"fmt"

	"golang.design/x/hotkey"

	"modkeys/modifiers"
)

// ErrUnsupported is returned when a set holds modifiers the platform cannot
// register a global hotkey with.
var ErrUnsupported = errors.New("modifiers not supported by platform hotkeys")

// Hotkey is a registered global shortcut. Unregister closes both event
// channels.
type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}

// Supported returns the modifiers this platform can register.
func Supported() modifiers.Set {
	var s modifiers.Set
	for m := range nativeModifiers {
		s = s.With(m)
	}
	return s
}

// Native converts s to the platform modifier list, in bit order and without
// duplicates.
func Native(s modifiers.Set) ([]hotkey.Modifier, error) {
	if extra := s.Difference(Supported()); !extra.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, extra)
	}
	var out []hotkey.Modifier
	seen := map[hotkey.Modifier]bool{}
	for _, m := range s.Modifiers() {
		nm := nativeModifiers[m]
		if seen[nm] {
			continue
		}
		seen[nm] = true
		out = append(out, nm)
	}
	return out, nil
}
