package hotkey

import (
	"sync"

	"golang.design/x/hotkey"

	"modkeys/modifiers"
)

type xHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	keyup   chan struct{}
	stop    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// New builds a global hotkey for key pressed together with the modifiers in s.
func New(s modifiers.Set, key hotkey.Key) (Hotkey, error) {
	mods, err := Native(s)
	if err != nil {
		return nil, err
	}
	return &xHotkey{
		hk:      hotkey.New(mods, key),
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

func (h *xHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	h.wg.Add(2)
	go h.forward(h.hk.Keydown(), h.keydown)
	go h.forward(h.hk.Keyup(), h.keyup)
	return nil
}

func (h *xHotkey) forward(in <-chan hotkey.Event, out chan<- struct{}) {
	defer h.wg.Done()
	for {
		select {
		case <-h.stop:
			return
		case <-in:
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}
}

func (h *xHotkey) Unregister() {
	h.once.Do(func() {
		close(h.stop)
		h.hk.Unregister()
		// forwarders are the only senders; once they are gone the
		// channels can be closed so readers ranging over them return.
		h.wg.Wait()
		close(h.keydown)
		close(h.keyup)
	})
}

func (h *xHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *xHotkey) Keyup() <-chan struct{} {
	return h.keyup
}
