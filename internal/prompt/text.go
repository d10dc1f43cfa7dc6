// Package prompt implements interactive terminal prompts: free-form text
// prompts and a single-line choice selector driven by key events.
package prompt

import (
	"github.com/cmdln/dot-dev/internal/terminal"
)

// RequiredNotice is printed when a required prompt receives an empty answer
const RequiredNotice = "A response is required."

// Terminal is the session the prompts read from and draw on
type Terminal interface {
	Print(s string) error
	Println() error
	ReadLine() (string, error)
	Raw(fn func() error) error
	SaveCursor() error
	RestoreCursor() error
	ClearLine() error
	ReadKey() (terminal.Key, error)
}

// Required shows label and reads lines until a non-empty one arrives.
// Whitespace is kept as typed.
func Required(t Terminal, label string) (string, error) {
	for {
		value, err := readLine(t, label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		if err := t.Print(RequiredNotice); err != nil {
			return "", err
		}
		if err := t.Println(); err != nil {
			return "", err
		}
	}
}

// Optional shows label and reads one line. An empty line means no value.
func Optional(t Terminal, label string) (string, bool, error) {
	value, err := readLine(t, label)
	if err != nil {
		return "", false, err
	}
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

func readLine(t Terminal, label string) (string, error) {
	if err := t.Print(label); err != nil {
		return "", err
	}
	return t.ReadLine()
}
