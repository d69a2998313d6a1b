package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readEscape decodes the rest of an escape sequence. Returns "escape" for a lone ESC.
func readEscape() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence, discard it
	return ""
}

// codeForByte returns the binding code of a plain key
func codeForByte(b byte) string {
	switch {
	case b == '\n' || b == '\r':
		return "enter"
	case b == ' ':
		return "space"
	case b == '\t':
		return "tab"
	case b >= 'A' && b <= 'Z':
		return string(b - 'A' + 'a')
	case b >= 32 && b < 127:
		return string(b)
	}
	return ""
}

// RawTerminal keeps stdin in raw mode until Restore is called
type RawTerminal struct {
	fd    int
	state *term.State
}

// MakeRaw puts stdin in raw mode
func MakeRaw() (*RawTerminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &RawTerminal{fd: fd, state: oldState}, nil
}

// Restore puts stdin back in the mode it had before MakeRaw
func (r *RawTerminal) Restore() error {
	return term.Restore(r.fd, r.state)
}

// ReadCode reads one key from a stdin already in raw mode and returns its binding code.
// Ctrl+C is reported as "q"; unknown keys give an empty code.
func ReadCode() (string, error) {
	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	switch b {
	case 0x1b:
		return readEscape(), nil
	case 3:
		return "q", nil
	}
	return codeForByte(b), nil
}

// IsTerminal reports whether stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
