package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events. For control bytes it is
	// the lowercase letter or punctuation the byte was typed with.
	Rune rune

	// Byte is the raw input byte for events decoded from a single byte.
	// It is zero for escape sequences and for parsed specifications.
	Byte byte

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// NewByteEvent creates the event for a single non-escape input byte.
//
// Control bytes 0x01-0x1A become Ctrl plus the matching lowercase letter,
// except Tab (0x09) and Enter (0x0D). 0x7F is Backspace. Every other byte,
// including bytes >= 0x80, is carried through as KeyRune.
func NewByteEvent(b byte) Event {
	ev := Event{Key: KeyRune, Rune: rune(b), Byte: b}
	switch {
	case b == '\t':
		ev.Key, ev.Rune = KeyTab, 0
	case b == '\r':
		ev.Key, ev.Rune = KeyEnter, 0
	case b == 0x7f:
		ev.Key, ev.Rune = KeyBackspace, 0
	case b == 0x1b:
		ev.Key, ev.Rune = KeyEscape, 0
	case b == 0:
		ev.Rune, ev.Modifiers = ' ', ModCtrl
	case b <= 0x1a:
		ev.Rune, ev.Modifiers = rune('a'+b-1), ModCtrl
	case b < 0x20:
		ev.Rune, ev.Modifiers = rune(b+0x40), ModCtrl
	}
	return ev
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// String returns a canonical string representation.
// Examples: "a", "C-q", "Up", "Esc"
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if e.Modifiers.Has(ModShift) && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else if unicode.IsPrint(e.Rune) {
			keyName = string(e.Rune)
		} else {
			keyName = fmt.Sprintf("0x%02x", e.Byte)
		}
	case KeyEscape:
		keyName = "Esc"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// Equals returns true if two events represent the same key press.
// The raw byte is not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}
