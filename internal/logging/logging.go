package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New creates the application logger. Unknown levels fall back to warn.
func New(level string, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        "dot-dev",
		Level:       lvl,
		Output:      w,
		DisableTime: true,
		Color:       hclog.AutoColor,
	})
}
