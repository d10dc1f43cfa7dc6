package prompt

import (
	"fmt"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/terminal"
)

// Outcome is the result of applying one key to a Selection
type Outcome int

const (
	Pending Outcome = iota
	Confirmed
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Selection is the state of a choice prompt: the options and the index of
// the one currently shown. Options are never modified.
type Selection[T comparable] struct {
	Index   int
	Options []T
}

// NewSelection starts at start, wrapped into range
func NewSelection[T comparable](options []T, start int) Selection[T] {
	s := Selection[T]{Options: options}
	if n := len(options); n > 0 {
		s.Index = ((start % n) + n) % n
	}
	return s
}

// Current returns the option at Index
func (s Selection[T]) Current() T {
	return s.Options[s.Index]
}

// Next applies key and returns the new state. It performs no I/O.
func (s Selection[T]) Next(key terminal.Key) (Selection[T], Outcome) {
	n := len(s.Options)
	switch key.Type {
	case terminal.KeyEnter:
		return s, Confirmed
	case terminal.KeyCtrlC:
		return s, Cancelled
	case terminal.KeyTab, terminal.KeyDown, terminal.KeyRight:
		if n > 0 {
			s.Index = (s.Index + 1) % n
		}
	case terminal.KeyShiftTab, terminal.KeyUp, terminal.KeyLeft:
		if n > 0 {
			s.Index = (s.Index - 1 + n) % n
		}
	}
	return s, Pending
}

// Choose shows label followed by the current option on one line and lets the
// user cycle through options until Enter commits one. Ctrl-C returns an
// interruption. Raw mode is held for a single key at a time.
func Choose[T comparable](t Terminal, label string, options []T, start int) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, apperr.Validation("choose", apperr.ErrNoOptions, "nothing to choose from")
	}

	sel := NewSelection(options, start)
	if err := t.SaveCursor(); err != nil {
		return zero, err
	}

	dirty := true
	for {
		var outcome Outcome
		err := t.Raw(func() error {
			if dirty {
				if err := render(t, label, sel.Current()); err != nil {
					return err
				}
			}

			key, err := t.ReadKey()
			if err != nil {
				return err
			}

			next, out := sel.Next(key)
			dirty = next.Index != sel.Index
			sel, outcome = next, out

			if outcome == Confirmed {
				return t.Println()
			}
			return nil
		})
		if err != nil {
			return zero, err
		}

		switch outcome {
		case Confirmed:
			return sel.Current(), nil
		case Cancelled:
			return zero, apperr.Interrupted("choose")
		}
	}
}

func render(t Terminal, label string, option any) error {
	if err := t.ClearLine(); err != nil {
		return err
	}
	if err := t.RestoreCursor(); err != nil {
		return err
	}
	return t.Print(label + fmt.Sprint(option))
}

// Answer is an option of a yes/no question
type Answer string

const (
	Yes Answer = "Yes"
	No  Answer = "No"
)

// Confirm asks a yes/no question, starting on Yes
func Confirm(t Terminal, question string) (bool, error) {
	answer, err := Choose(t, question, []Answer{Yes, No}, 0)
	if err != nil {
		return false, err
	}
	return answer == Yes, nil
}

// Console binds the prompts to one terminal session
type Console struct {
	Terminal Terminal
}

func (c Console) Required(label string) (string, error) {
	return Required(c.Terminal, label)
}

func (c Console) Optional(label string) (string, bool, error) {
	return Optional(c.Terminal, label)
}

func (c Console) Confirm(question string) (bool, error) {
	return Confirm(c.Terminal, question)
}
