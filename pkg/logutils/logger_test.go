package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagHook struct{}

func (tagHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("tag", "hooked")
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "cubeshuffle.log")

	logger, closer, err := New("info", file, tagHook{})
	require.NoError(t, err)

	logger.Debug().Msg("filtered out")
	logger.Info().Msg("kept")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"message":"kept"`)
	assert.Contains(t, out, `"tag":"hooked"`)
	assert.NotContains(t, out, "filtered out")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cubeshuffle.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
