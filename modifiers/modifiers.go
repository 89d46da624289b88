// Package modifiers holds the set of modifier keys (Shift, Control, Alt,
// Meta, the lock keys, ...) active during an input event.
//
// A Set wraps a uint32 bit pattern that only ever holds defined bits. It is
// comparable, so it can be used as a map key, and every operation returns a
// new value.
package modifiers

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
)

// Modifier is a single modifier key.
type Modifier uint32

const (
	Alt        Modifier = 0x01 // Alt or Option
	AltGraph   Modifier = 0x02
	CapsLock   Modifier = 0x04
	Control    Modifier = 0x08
	Fn         Modifier = 0x10
	FnLock     Modifier = 0x20
	Meta       Modifier = 0x40 // Windows key on PC, Command on Mac
	NumLock    Modifier = 0x80
	ScrollLock Modifier = 0x100
	Shift      Modifier = 0x200
	Symbol     Modifier = 0x400
	SymbolLock Modifier = 0x800
	Hyper      Modifier = 0x1000 // legacy
	Super      Modifier = 0x2000 // legacy
)

// mask covers every defined bit.
const mask = 0x3FFF

var known = []Modifier{
	Alt, AltGraph, CapsLock, Control, Fn, FnLock, Meta,
	NumLock, ScrollLock, Shift, Symbol, SymbolLock, Hyper, Super,
}

var names = map[Modifier]string{
	Alt:        "ALT",
	AltGraph:   "ALT_GRAPH",
	CapsLock:   "CAPS_LOCK",
	Control:    "CONTROL",
	Fn:         "FN",
	FnLock:     "FN_LOCK",
	Meta:       "META",
	NumLock:    "NUM_LOCK",
	ScrollLock: "SCROLL_LOCK",
	Shift:      "SHIFT",
	Symbol:     "SYMBOL",
	SymbolLock: "SYMBOL_LOCK",
	Hyper:      "HYPER",
	Super:      "SUPER",
}

// ErrInvalidBits is returned when a raw pattern has bits outside the defined
// modifiers.
var ErrInvalidBits = errors.New("invalid modifier bits")

// Known returns every defined modifier in ascending bit order.
func Known() []Modifier {
	out := make([]Modifier, len(known))
	copy(out, known)
	return out
}

// Valid reports whether m is exactly one defined modifier.
func (m Modifier) Valid() bool {
	return m != 0 && m&mask == m && bits.OnesCount32(uint32(m)) == 1
}

func (m Modifier) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("Modifier(%#x)", uint32(m))
}

// Set is a combination of active modifiers. The zero value is the empty set.
// The bits are only reachable through the constructors, so a Set never holds
// an undefined bit.
type Set struct {
	bits uint32
}

// Empty returns the set with no modifier pressed.
func Empty() Set { return Set{} }

// All returns the set of every defined modifier.
func All() Set { return Set{mask} }

// FromBits builds a set from a raw bit pattern. Any bit outside the defined
// modifiers is an error matching ErrInvalidBits.
func FromBits(raw uint32) (Set, error) {
	if extra := raw &^ mask; extra != 0 {
		return Set{}, fmt.Errorf("%w: %#x", ErrInvalidBits, extra)
	}
	return Set{raw}, nil
}

// FromBitsTruncate builds a set from a raw bit pattern, dropping unknown bits.
// Prefer it for key state coming from outside the process.
func FromBitsTruncate(raw uint32) Set {
	return Set{raw & mask}
}

// Single returns the set holding only m. Values that are not one defined
// modifier give the empty set.
func Single(m Modifier) Set {
	if !m.Valid() {
		return Set{}
	}
	return Set{uint32(m)}
}

// Of returns the union of the given modifiers.
func Of(mods ...Modifier) Set {
	var s Set
	for _, m := range mods {
		s = s.Union(Single(m))
	}
	return s
}

// Compare orders sets by their raw value.
func Compare(a, b Set) int {
	return cmp.Compare(a.bits, b.bits)
}

func (s Set) Bits() uint32 { return s.bits }

func (s Set) Union(o Set) Set               { return Set{s.bits | o.bits} }
func (s Set) Intersection(o Set) Set        { return Set{s.bits & o.bits} }
func (s Set) Difference(o Set) Set          { return Set{s.bits &^ o.bits} }
func (s Set) SymmetricDifference(o Set) Set { return Set{s.bits ^ o.bits} }

// Complement returns the defined modifiers not in s.
func (s Set) Complement() Set { return Set{^s.bits & mask} }

// Contains reports whether every modifier of sub is also in s.
func (s Set) Contains(sub Set) bool { return s.bits&sub.bits == sub.bits }

// Intersects reports whether s and o share at least one modifier.
func (s Set) Intersects(o Set) bool { return s.bits&o.bits != 0 }

func (s Set) IsEmpty() bool { return s.bits == 0 }
func (s Set) IsAll() bool   { return s.bits == mask }

func (s Set) Has(m Modifier) bool { return m.Valid() && s.Contains(Single(m)) }

func (s Set) With(m Modifier) Set    { return s.Union(Single(m)) }
func (s Set) Without(m Modifier) Set { return s.Difference(Single(m)) }

// Len returns the number of modifiers in s.
func (s Set) Len() int { return bits.OnesCount32(s.bits) }

// Modifiers lists the members of s in ascending bit order.
func (s Set) Modifiers() []Modifier {
	out := make([]Modifier, 0, s.Len())
	for _, m := range known {
		if s.bits&uint32(m) != 0 {
			out = append(out, m)
		}
	}
	return out
}

// Shift reports whether a shift key is pressed.
func (s Set) Shift() bool { return s.Contains(Single(Shift)) }

// Ctrl reports whether a control key is pressed.
func (s Set) Ctrl() bool { return s.Contains(Single(Control)) }

// Alt reports whether an alt key is pressed.
func (s Set) Alt() bool { return s.Contains(Single(Alt)) }

// Meta reports whether a meta key is pressed.
func (s Set) Meta() bool { return s.Contains(Single(Meta)) }
