package hotkey

import (
	"errors"
	"strings"
	"testing"
	"time"

	"modkeys/modifiers"
)

func TestSupportedCoversPredicates(t *testing.T) {
	want := modifiers.Of(modifiers.Shift, modifiers.Control, modifiers.Alt, modifiers.Meta)
	if !Supported().Contains(want) {
		t.Errorf("Supported() = %q, want it to contain %q", Supported(), want)
	}
}

func TestNativeEmpty(t *testing.T) {
	mods, err := Native(modifiers.Empty())
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 0 {
		t.Errorf("got %v, want none", mods)
	}
}

func TestNativeDedupesMetaSuper(t *testing.T) {
	mods, err := Native(modifiers.Of(modifiers.Meta, modifiers.Super))
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 1 {
		t.Errorf("got %v, want a single native modifier", mods)
	}
}

func TestNativeUnsupported(t *testing.T) {
	_, err := Native(modifiers.Of(modifiers.Control, modifiers.Fn, modifiers.SymbolLock))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if !strings.Contains(err.Error(), "FN | SYMBOL_LOCK") {
		t.Errorf("error %q should name the unsupported modifiers", err)
	}
}

func TestNewRejectsUnsupported(t *testing.T) {
	if _, err := New(modifiers.Single(modifiers.CapsLock), 0); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestFake(t *testing.T) {
	fk := NewFake(modifiers.Of(modifiers.Control, modifiers.Shift))
	var hk Hotkey = fk
	if err := hk.Register(); err != nil {
		t.Fatal(err)
	}
	defer hk.Unregister()

	fk.SimKeydown()
	select {
	case <-hk.Keydown():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for keydown")
	}
	fk.SimKeyup()
	select {
	case <-hk.Keyup():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for keyup")
	}
	if !fk.Mods.Ctrl() || !fk.Mods.Shift() {
		t.Errorf("Mods = %q", fk.Mods)
	}
}

func TestFakeUnregisterClosesChannels(t *testing.T) {
	fk := NewFake(modifiers.Single(modifiers.Meta))
	fk.Unregister()
	fk.Unregister()

	if _, ok := <-fk.Keydown(); ok {
		t.Error("keydown still open after Unregister")
	}
	if _, ok := <-fk.Keyup(); ok {
		t.Error("keyup still open after Unregister")
	}
	fk.SimKeydown()
}
