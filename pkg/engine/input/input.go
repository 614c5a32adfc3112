package input

import (
	"bufio"
	"io"
	"strings"
)

// KeyReader decodes single key presses from a raw-mode terminal stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r. The terminal must already be in raw mode.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a key press is available and returns its code
// ("arrow_up", "enter", "q", ...). Unknown sequences return "".
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape()
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}
	return "", nil
}

// readEscape handles what follows an ESC byte. A lone ESC (nothing else
// buffered) is the escape key itself.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Numbered sequences such as ESC [ 2 4 ~ (F12)
	if b3 >= '0' && b3 <= '9' {
		num := []byte{b3}
		for {
			b, err := k.r.ReadByte()
			if err != nil {
				return "", err
			}
			if b == '~' {
				break
			}
			if b < '0' || b > '9' {
				// Modifier or unknown sequence - discard it
				return "", nil
			}
			num = append(num, b)
		}
		if string(num) == "24" {
			return "f12", nil
		}
	}

	// Unknown escape sequence - discard it
	return "", nil
}
