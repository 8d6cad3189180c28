package key

import (
	"context"
	"errors"
	"unicode/utf8"
)

// ErrSourceClosed is returned by a ByteSource that can produce no more
// input. The decoder does not treat it specially; it is fatal like any
// other read error.
var ErrSourceClosed = errors.New("input source closed")

const escByte = 0x1b

// ByteSource delivers raw input one byte at a time.
//
// ReadByte waits at most a short, bounded interval. When the interval
// elapses without input it returns ok == false and a nil error.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder turns raw terminal input into key events.
// It is not safe for concurrent use.
type Decoder struct {
	src ByteSource
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Decode blocks until a complete key has been read and returns it.
//
// Idle timeouts while waiting for the first byte are retried; ctx is
// checked between retries so a cancelled context ends the wait. Once an
// escape byte has been seen, each further byte gets a single attempt and
// a timeout resolves the whole sequence to KeyEscape.
func (d *Decoder) Decode(ctx context.Context) (Event, error) {
	var c byte
	for {
		b, ok, err := d.src.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if ok {
			c = b
			break
		}
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
	}

	if c != escByte {
		return NewByteEvent(c), nil
	}
	return d.decodeEscape()
}

// decodeEscape resolves the bytes following an ESC.
func (d *Decoder) decodeEscape() (Event, error) {
	escape := NewSpecialEvent(KeyEscape, ModNone)

	first, ok, err := d.src.ReadByte()
	if err != nil || !ok {
		return escape, err
	}
	second, ok, err := d.src.ReadByte()
	if err != nil || !ok {
		return escape, err
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			tail, ok, err := d.src.ReadByte()
			if err != nil || !ok {
				return escape, err
			}
			if tail != '~' {
				return escape, nil
			}
			if k, found := tildeKeys[second]; found {
				return NewSpecialEvent(k, ModNone), nil
			}
			return escape, nil
		}
		if k, found := csiKeys[second]; found {
			return NewSpecialEvent(k, ModNone), nil
		}
	case 'O':
		if k, found := ss3Keys[second]; found {
			return NewSpecialEvent(k, ModNone), nil
		}
	}
	return escape, nil
}

// Decodable reports whether some input read by a Decoder produces ev.
//
// Special keys arrive only unmodified, and only those the escape tables or
// a single byte map to. Characters arrive as one ASCII byte, so Ctrl works
// only where a control byte exists and never on bytes claimed by Tab,
// Enter or Escape. Alt and Shift never arrive.
func Decodable(ev Event) bool {
	if ev.Key.IsSpecial() {
		return ev.Modifiers == ModNone && decodableKeys[ev.Key]
	}
	if ev.Key != KeyRune || ev.Rune >= utf8.RuneSelf {
		return false
	}
	for b := 0; b < utf8.RuneSelf; b++ {
		if b != escByte && NewByteEvent(byte(b)).Equals(ev) {
			return true
		}
	}
	return false
}

// decodableKeys holds every special key Decode can return.
var decodableKeys = func() map[Key]bool {
	keys := map[Key]bool{KeyEscape: true}
	for b := 0; b < 256; b++ {
		if k := NewByteEvent(byte(b)).Key; k.IsSpecial() {
			keys[k] = true
		}
	}
	for _, table := range []map[byte]Key{tildeKeys, csiKeys, ss3Keys} {
		for _, k := range table {
			keys[k] = true
		}
	}
	return keys
}()

// tildeKeys maps the digit of "ESC [ <digit> ~" to its key.
var tildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// csiKeys maps the final byte of "ESC [ X" to its key.
var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ss3Keys maps the final byte of "ESC O X" to its key.
var ss3Keys = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}
