package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("disabled"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	var b bytes.Buffer
	l := New(Config{Level: "warn", Out: &b})

	l.Info().Msg("hidden")
	assert.Empty(t, b.String())

	l.Warn().Str("component", "test").Msg("shown")
	assert.Contains(t, b.String(), `"level":"warn"`)
	assert.Contains(t, b.String(), `"component":"test"`)
	assert.Contains(t, b.String(), `"message":"shown"`)
}
