package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdln/dot-dev/internal/apperr"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"carriage return", "\r", Key{Type: KeyEnter}},
		{"newline", "\n", Key{Type: KeyEnter}},
		{"ctrl-c", "\x03", Key{Type: KeyCtrlC}},
		{"tab", "\t", Key{Type: KeyTab}},
		{"shift-tab", "\x1b[Z", Key{Type: KeyShiftTab}},
		{"up", "\x1b[A", Key{Type: KeyUp}},
		{"down", "\x1b[B", Key{Type: KeyDown}},
		{"right", "\x1b[C", Key{Type: KeyRight}},
		{"left", "\x1b[D", Key{Type: KeyLeft}},
		{"ss3 up", "\x1bOA", Key{Type: KeyUp}},
		{"modified right", "\x1b[1;2C", Key{Type: KeyRight}},
		{"lone escape", "\x1b", Key{Type: KeyEscape}},
		{"delete", "\x7f", Key{Type: KeyBackspace}},
		{"letter", "y", Key{Type: KeyRune, Rune: 'y'}},
		{"multibyte", "é", Key{Type: KeyRune, Rune: 'é'}},
		{"other control", "\x01", Key{Type: KeyUnknown}},
		{"unknown csi", "\x1b[5~", Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeKey(bufio.NewReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeKey_Sequence(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\t\x1b[Bx\r"))

	var got []KeyType
	for i := 0; i < 4; i++ {
		key, err := DecodeKey(r)
		require.NoError(t, err)
		got = append(got, key.Type)
	}
	assert.Equal(t, []KeyType{KeyTab, KeyDown, KeyRune, KeyEnter}, got)
}

func TestTTY_ReadKey_EndOfInput(t *testing.T) {
	tty := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := tty.ReadKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInterrupted))
}

func TestTTY_ReadLine(t *testing.T) {
	tty := New(strings.NewReader("  padded  \r\nsecond\nlast"), &bytes.Buffer{})

	line, err := tty.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", line)

	line, err = tty.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	// Final line without terminator still counts as output.
	line, err = tty.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = tty.ReadLine()
	assert.True(t, errors.Is(err, apperr.ErrInterrupted))
}

func TestTTY_RawWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	tty := New(strings.NewReader(""), &out)
	assert.False(t, tty.Interactive())

	called := false
	err := tty.Raw(func() error {
		called = true
		return tty.Print("inside")
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "inside", out.String())
}

func TestTTY_RawPropagatesError(t *testing.T) {
	tty := New(strings.NewReader(""), &bytes.Buffer{})
	boom := errors.New("boom")

	err := tty.Raw(func() error { return boom })
	assert.Equal(t, boom, err)
}

func TestTTY_CursorSequences(t *testing.T) {
	var out bytes.Buffer
	tty := New(strings.NewReader(""), &out)

	require.NoError(t, tty.SaveCursor())
	require.NoError(t, tty.ClearLine())
	require.NoError(t, tty.RestoreCursor())
	require.NoError(t, tty.Println())

	assert.Equal(t, "\x1b7\x1b[2K\r\x1b8\n", out.String())
}
