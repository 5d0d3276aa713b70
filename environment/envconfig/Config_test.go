package envconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	mutations := []func(*Config){
		func(c *Config) { c.Arenas = 0 },
		func(c *Config) { c.MaxSteps = 0 },
		func(c *Config) { c.EpisodeCutoff = -1 },
		func(c *Config) { c.PhysicsSteps = 0 },
		func(c *Config) { c.Discount = 1.5 },
		func(c *Config) { c.LeftPolicy = "Clever" },
	}
	for i, mutate := range mutations {
		c := Default()
		mutate(&c)
		assert.Error(t, c.Validate(), "mutation %v", i)
	}
}

func TestLoadYAML(t *testing.T) {
	src := `
arenas: 4
max_steps: 200
seed: 9
right_policy: Idle
parameters:
  angle: 30
  scale: 0.25
`
	c, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Arenas)
	assert.Equal(t, 200, c.MaxSteps)
	assert.Equal(t, uint64(9), c.Seed)
	assert.Equal(t, Uniform, c.LeftPolicy)
	assert.Equal(t, Idle, c.RightPolicy)
	assert.Equal(t, Default().EpisodeCutoff, c.EpisodeCutoff)

	p := c.NewParameters()
	assert.Equal(t, 30.0, p.Parameter("angle", 55))
	assert.Equal(t, 0.25, p.Parameter("scale", 0.5))
	assert.Equal(t, 0.0, p.Parameter("ball_touch", 0))
}

func TestLoadYAMLRejectsUnknownFields(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("arena: 3\n"))
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	c, err := LoadJSON(strings.NewReader(`{"arenas": 2, "log_level": "debug"}`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Arenas)
	assert.Equal(t, "debug", c.LogLevel)

	_, err = LoadJSON(strings.NewReader(`{"arenas": -2}`))
	assert.Error(t, err)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "run.yml")
	require.NoError(t, os.WriteFile(yml, []byte("arenas: 3\n"), 0o644))
	c, err := Load(yml)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Arenas)

	js := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(js, []byte(`{"max_steps": 7}`), 0o644))
	c, err = Load(js)
	require.NoError(t, err)
	assert.Equal(t, 7, c.MaxSteps)

	txt := filepath.Join(dir, "run.txt")
	require.NoError(t, os.WriteFile(txt, []byte("arenas: 3"), 0o644))
	_, err = Load(txt)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
