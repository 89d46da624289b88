package hotkey

import (
	"sync"

	"modkeys/modifiers"
)

// FakeHotkey is an in-process Hotkey driven by SimKeydown and SimKeyup.
type FakeHotkey struct {
	Mods    modifiers.Set
	keydown chan struct{}
	keyup   chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewFake(s modifiers.Set) *FakeHotkey {
	return &FakeHotkey{
		Mods:    s,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}
}

func (f *FakeHotkey) Register() error          { return nil }
func (f *FakeHotkey) Keydown() <-chan struct{} { return f.keydown }
func (f *FakeHotkey) Keyup() <-chan struct{}   { return f.keyup }

func (f *FakeHotkey) Unregister() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.keydown)
	close(f.keyup)
}

// SimKeydown and SimKeyup drop the event when one is already pending, like
// the native forwarder, and are no-ops after Unregister.
func (f *FakeHotkey) SimKeydown() { f.sim(f.keydown) }
func (f *FakeHotkey) SimKeyup()   { f.sim(f.keyup) }

func (f *FakeHotkey) sim(ch chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}
