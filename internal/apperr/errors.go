package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInterrupted is returned when the user cancels a prompt or the input ends mid-prompt
	ErrInterrupted = errors.New("interrupted")

	// ErrProfileNotFound is returned when a named profile does not exist in the config file
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileExists is returned when adding a profile whose name is already taken
	ErrProfileExists = errors.New("profile already exists")

	// ErrReservedName is returned when a profile is named after the default profile
	ErrReservedName = errors.New("reserved profile name")

	// ErrNoOptions is returned when a choice prompt is given nothing to choose from
	ErrNoOptions = errors.New("no options to choose from")

	// ErrMissingValue is returned when a required variable has no value and prompting is disabled
	ErrMissingValue = errors.New("missing value")
)

// Kind classifies an error so callers can match on it without probing error types.
type Kind int

const (
	KindUnknown Kind = iota
	KindInterrupted
	KindIO
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindInterrupted:
		return "interrupted"
	case KindIO:
		return "io"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error carries a Kind together with the operation that failed
type Error struct {
	Kind        Kind
	Op          string // operation being performed
	Err         error
	Message     string
	Suggestions []string // user-friendly suggestions for resolving the error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s (%v)", e.Op, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets every interruption match ErrInterrupted, whatever it wraps.
func (e *Error) Is(target error) bool {
	return target == ErrInterrupted && e.Kind == KindInterrupted
}

// UserFriendlyMessage returns the message followed by numbered suggestions
func (e *Error) UserFriendlyMessage() string {
	var msg strings.Builder

	if e.Message != "" {
		msg.WriteString(e.Message)
	} else {
		msg.WriteString(e.Error())
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggested solutions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Interrupted creates an interruption error for op
func Interrupted(op string) *Error {
	return &Error{Kind: KindInterrupted, Op: op, Err: ErrInterrupted}
}

// IO wraps a terminal or file failure
func IO(op string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// Validation creates a domain failure with optional suggestions
func Validation(op string, err error, message string, suggestions ...string) *Error {
	return &Error{
		Kind:        KindValidation,
		Op:          op,
		Err:         err,
		Message:     message,
		Suggestions: suggestions,
	}
}

// KindOf reports the Kind of the first *Error in err's chain.
// A bare ErrInterrupted is classified as KindInterrupted.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrInterrupted) {
		return KindInterrupted
	}
	return KindUnknown
}

// UserFriendlyMessage renders err for the terminal, using suggestions when available
func UserFriendlyMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserFriendlyMessage()
	}
	return err.Error()
}
