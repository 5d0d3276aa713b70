package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/tennisrl/experiment/tracker"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestParamsDefaults(t *testing.T) {
	out := execute(t, "params")

	assert.Equal(t, "angle=55\nscale=0.5\nball_touch=0\n", out)
}

func TestParamsFromEnv(t *testing.T) {
	t.Setenv("TENNIS_ANGLE", "40")
	out := execute(t, "params")

	assert.Contains(t, out, "angle=40\n")
}

func TestParamsFromFiles(t *testing.T) {
	dir := t.TempDir()

	envFile := filepath.Join(dir, "tennis.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TENNIS_SCALE=0.8\n"),
		0o644))
	config := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(config, []byte("parameters:\n"+
		"  ball_touch: 1\n  wind: 2\n"), 0o644))

	t.Cleanup(func() { os.Unsetenv("TENNIS_SCALE") })
	out := execute(t, "params", "--env-file", envFile, "-c", config)

	assert.Equal(t, "angle=55\nscale=0.8\nball_touch=1\nwind=2\n", out)
}

func TestParamsBadEnv(t *testing.T) {
	t.Setenv("TENNIS_SCALE", "big")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"params"})
	assert.Error(t, cmd.Execute())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "data")

	execute(t, "run", "-n", "2", "-s", "50", "-o", output,
		"--log-level", "error", "--progress")

	for _, name := range []string{"arena-0-Left", "arena-1-Right"} {
		_, err := tracker.LoadData[float64](filepath.Join(output,
			name+".return"))
		assert.NoError(t, err, name)
	}
}

func TestRunInvalid(t *testing.T) {

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "-n", "0"})
	assert.Error(t, cmd.Execute())
}
