package terminal

import (
	"bufio"
	"fmt"
)

// KeyType identifies a decoded keyboard event
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune
	KeyEnter
	KeyCtrlC
	KeyTab
	KeyShiftTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyEscape
)

// Key is a single decoded keyboard event. Rune is only set for KeyRune.
type Key struct {
	Type KeyType
	Rune rune
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyTab:
		return "tab"
	case KeyShiftTab:
		return "shift+tab"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "esc"
	default:
		return fmt.Sprintf("unknown(%d)", k.Type)
	}
}

const (
	byteCtrlC     = 0x03
	byteBackspace = 0x08
	byteTab       = '\t'
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// DecodeKey reads one keyboard event from r. Escape sequences are expected to
// arrive in a single read, which is how terminals deliver them in raw mode.
func DecodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case '\r', '\n':
		return Key{Type: KeyEnter}, nil
	case byteCtrlC:
		return Key{Type: KeyCtrlC}, nil
	case byteTab:
		return Key{Type: KeyTab}, nil
	case byteBackspace, byteDelete:
		return Key{Type: KeyBackspace}, nil
	case byteEscape:
		return decodeEscape(r)
	}

	if b < 0x20 {
		return Key{Type: KeyUnknown}, nil
	}

	if err := r.UnreadByte(); err != nil {
		return Key{}, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	return Key{Type: KeyRune, Rune: ch}, nil
}

// decodeEscape handles CSI ("ESC [") and SS3 ("ESC O") cursor sequences.
func decodeEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return Key{Type: KeyEscape}, nil
	}

	intro, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if intro != '[' && intro != 'O' {
		return Key{Type: KeyUnknown}, nil
	}

	// Skip parameter bytes such as "1;2" until the final byte.
	var final byte
	for {
		if r.Buffered() == 0 {
			return Key{Type: KeyUnknown}, nil
		}
		final, err = r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if final >= 0x40 && final <= 0x7e {
			break
		}
	}

	switch final {
	case 'A':
		return Key{Type: KeyUp}, nil
	case 'B':
		return Key{Type: KeyDown}, nil
	case 'C':
		return Key{Type: KeyRight}, nil
	case 'D':
		return Key{Type: KeyLeft}, nil
	case 'Z':
		return Key{Type: KeyShiftTab}, nil
	default:
		return Key{Type: KeyUnknown}, nil
	}
}
