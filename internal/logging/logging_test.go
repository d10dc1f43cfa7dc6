package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"debug", true, true},
		{"WARN", false, true},
		{"error", false, false},
		{"bogus", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(tt.level, &bytes.Buffer{})
			assert.Equal(t, tt.wantDebug, logger.IsDebug())
			assert.Equal(t, tt.wantWarn, logger.IsWarn())
		})
	}
}

func TestNew_WritesNamedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", &buf)

	logger.Debug("saving", "path", "dot-dev.json")

	assert.Contains(t, buf.String(), "[DEBUG] dot-dev: saving")
	assert.Contains(t, buf.String(), "path=dot-dev.json")
}
