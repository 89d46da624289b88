// Package press injects key presses with a given modifier set through the
// OS input layer (uinput on Linux, CGEvent on macOS, SendInput on Windows).
package press

import (
	"errors"
	"fmt"
	"sync"

	"github.com/micmonay/keybd_event"

	"modkeys/modifiers"
)

var ErrUnsupported = errors.New("modifiers cannot be injected")

// Supported is the set Apply can express.
var Supported = modifiers.Of(modifiers.Shift, modifiers.Control, modifiers.Alt, modifiers.Meta, modifiers.Super)

// Bonding is the part of *keybd_event.KeyBonding that carries modifiers.
type Bonding interface {
	HasCTRL(bool)
	HasSHIFT(bool)
	HasALT(bool)
	HasSuper(bool)
}

// Apply sets the modifier flags of b to match s. Meta and Super both use the
// super flag.
func Apply(b Bonding, s modifiers.Set) error {
	if extra := s.Difference(Supported); !extra.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrUnsupported, extra)
	}
	b.HasCTRL(s.Ctrl())
	b.HasSHIFT(s.Shift())
	b.HasALT(s.Alt())
	b.HasSuper(s.Meta() || s.Has(modifiers.Super))
	return nil
}

var (
	kb     keybd_event.KeyBonding
	kbOnce sync.Once
	kbErr  error
	kbMu   sync.Mutex
)

func Init() error {
	kbOnce.Do(func() {
		kb, kbErr = keybd_event.NewKeyBonding()
	})
	return kbErr
}

// Send presses and releases keys while holding the modifiers in s.
func Send(s modifiers.Set, keys ...int) error {
	if err := Init(); err != nil {
		return fmt.Errorf("init key bonding: %w", err)
	}
	kbMu.Lock()
	defer kbMu.Unlock()
	if err := Apply(&kb, s); err != nil {
		return err
	}
	kb.SetKeys(keys...)
	return kb.Launching()
}
