package modifiers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownModifier = errors.New("unknown modifier")
	ErrSyntax          = errors.New("malformed modifier list")
)

var byName = map[string]Modifier{
	"ALT":         Alt,
	"OPTION":      Alt,
	"ALT_GRAPH":   AltGraph,
	"ALTGRAPH":    AltGraph,
	"ALTGR":       AltGraph,
	"CAPS_LOCK":   CapsLock,
	"CAPSLOCK":    CapsLock,
	"CAPS":        CapsLock,
	"CONTROL":     Control,
	"CTRL":        Control,
	"FN":          Fn,
	"FN_LOCK":     FnLock,
	"FNLOCK":      FnLock,
	"META":        Meta,
	"CMD":         Meta,
	"COMMAND":     Meta,
	"WIN":         Meta,
	"NUM_LOCK":    NumLock,
	"NUMLOCK":     NumLock,
	"SCROLL_LOCK": ScrollLock,
	"SCROLLLOCK":  ScrollLock,
	"SHIFT":       Shift,
	"SYMBOL":      Symbol,
	"SYMBOL_LOCK": SymbolLock,
	"SYMBOLLOCK":  SymbolLock,
	"HYPER":       Hyper,
	"SUPER":       Super,
}

// String returns the canonical names of the members joined by " | ", in bit
// order. The empty set is "".
func (s Set) String() string {
	mods := s.Modifiers()
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = names[m]
	}
	return strings.Join(parts, " | ")
}

// Parse reads a modifier list such as "CONTROL | SHIFT", "ctrl+shift" or
// "0x208". Hex literals must only carry defined bits.
func Parse(text string) (Set, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Set{}, nil
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool { return r == '|' || r == '+' })
	if len(tokens) != strings.Count(text, "|")+strings.Count(text, "+")+1 {
		return Set{}, fmt.Errorf("%w: %q", ErrSyntax, text)
	}

	var s Set
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Set{}, fmt.Errorf("%w: %q", ErrSyntax, text)
		}
		if hex, ok := strings.CutPrefix(strings.ToLower(tok), "0x"); ok {
			raw, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return Set{}, fmt.Errorf("%w: bad hex %q", ErrSyntax, tok)
			}
			bits, err := FromBits(uint32(raw))
			if err != nil {
				return Set{}, err
			}
			s = s.Union(bits)
			continue
		}
		m, ok := byName[strings.ToUpper(tok)]
		if !ok {
			return Set{}, fmt.Errorf("%w: %q", ErrUnknownModifier, tok)
		}
		s = s.With(m)
	}
	return s, nil
}

func (s Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Set) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalJSON accepts the text form as a JSON string or a raw bit pattern
// as a JSON number. Unknown bits in a number are dropped.
func (s *Set) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] != '"' {
		if string(data) == "null" {
			return nil
		}
		var raw uint32
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decoding modifier bits: %w", err)
		}
		*s = FromBitsTruncate(raw)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(text))
}

// UnmarshalYAML accepts the text form or a raw bit pattern as a YAML integer.
// Unknown bits in an integer are dropped, as for JSON.
func (s *Set) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!int" {
		raw, err := strconv.ParseUint(n.Value, 0, 32)
		if err != nil {
			return fmt.Errorf("decoding modifier bits at line %d: %w", n.Line, err)
		}
		*s = FromBitsTruncate(uint32(raw))
		return nil
	}
	var text string
	if err := n.Decode(&text); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(text))
}
