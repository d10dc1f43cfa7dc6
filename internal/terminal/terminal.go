package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/cmdln/dot-dev/internal/apperr"
)

type lineResult struct {
	line string
	err  error
}

// TTY is a byte-oriented terminal session over an input and an output stream.
// Raw mode is only entered when the input is an interactive terminal; piped
// input is read as-is so the same prompts work in scripts and tests.
//
// After a read returns an interruption the session is unusable: the
// abandoned line read still owns the input.
type TTY struct {
	reader      *bufio.Reader
	out         io.Writer
	fd          int
	interactive bool
	raw         bool
	pending     chan lineResult
}

// Open returns a session on the process's standard streams
func Open() *TTY {
	return New(os.Stdin, os.Stdout)
}

// New creates a session reading from in and writing to out
func New(in io.Reader, out io.Writer) *TTY {
	t := &TTY{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
	}
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		t.fd = int(f.Fd())
		t.interactive = true
	}
	return t
}

// Interactive reports whether input comes from a terminal
func (t *TTY) Interactive() bool {
	return t.interactive
}

// Raw runs fn with the terminal in raw mode. The previous mode is restored
// when fn returns, fails or panics.
func (t *TTY) Raw(fn func() error) (err error) {
	if !t.interactive {
		return fn()
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return apperr.IO("enter raw mode", err)
	}
	t.raw = true
	defer func() {
		t.raw = false
		if rerr := term.Restore(t.fd, state); rerr != nil && err == nil {
			err = apperr.IO("restore terminal mode", rerr)
		}
	}()

	return fn()
}

// Print writes s to the output. The output is unbuffered, so s is visible
// before any following read blocks.
func (t *TTY) Print(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return apperr.IO("write to terminal", err)
	}
	return nil
}

// Println ends the current line. Raw mode needs an explicit carriage return.
func (t *TTY) Println() error {
	if t.raw {
		return t.Print("\r\n")
	}
	return t.Print("\n")
}

func (t *TTY) SaveCursor() error {
	return t.Print(ansi.SaveCursor)
}

func (t *TTY) RestoreCursor() error {
	return t.Print(ansi.RestoreCursor)
}

func (t *TTY) ClearLine() error {
	return t.Print(ansi.EraseEntireLine + "\r")
}

// ReadKey blocks for the next keyboard event. End of input is an interruption.
func (t *TTY) ReadKey() (Key, error) {
	key, err := DecodeKey(t.reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Key{}, apperr.Interrupted("read key")
		}
		return Key{}, apperr.IO("read key", err)
	}
	return key, nil
}

// ReadLine blocks for one line of cooked input and strips its terminator.
// End of input before any byte, or SIGINT while waiting, is an interruption.
func (t *TTY) ReadLine() (string, error) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	// A read abandoned by an earlier interruption still owns the reader.
	if t.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := t.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		t.pending = ch
	}

	select {
	case res := <-t.pending:
		t.pending = nil
		return finishLine(res)
	case <-sigs:
		return "", apperr.Interrupted("read line")
	}
}

func finishLine(res lineResult) (string, error) {
	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", apperr.IO("read line", res.err)
		}
		if res.line == "" {
			return "", apperr.Interrupted("read line")
		}
	}
	line := strings.TrimSuffix(res.line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
