package logger

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, format string, logFn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		os.Stdout = orig
		Initialize("info", "text")
	}()

	Initialize("info", format)
	logFn()

	require.NoError(t, w.Close())
	os.Stdout = orig
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestWithJob_AttachesJobName(t *testing.T) {
	out := captureOutput(t, "json", func() {
		WithJob("NightlySweep").Info("Starting job")
	})
	assert.Contains(t, out, `"job":"NightlySweep"`)
	assert.Contains(t, out, "Starting job")
}

func TestInitialize_LevelFiltersDebug(t *testing.T) {
	out := captureOutput(t, "text", func() {
		Debug("hidden")
		Info("visible")
	})
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}
