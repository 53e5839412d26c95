package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level, format string
		want          zapcore.Level
	}{
		{"info", "json", zapcore.InfoLevel},
		{"debug", "console", zapcore.DebugLevel},
		{" warn ", "", zapcore.WarnLevel},
		{"error", "CONSOLE", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			log, err := New(tc.level, tc.format)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tc.want))
			assert.False(t, log.Core().Enabled(tc.want-1))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("loud", "json")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = New("info", "xml")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
