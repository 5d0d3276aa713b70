package experiment

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/tennisrl/environment/envconfig"
	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/experiment/tracker"
	"github.com/samuelfneumann/tennisrl/experiment/trackers"
	"github.com/samuelfneumann/tennisrl/policy"
)

func idleConfig(t *testing.T) envconfig.Config {
	c := envconfig.Default()
	c.MaxSteps = 12
	c.EpisodeCutoff = 5
	c.LeftPolicy = envconfig.Idle
	c.RightPolicy = envconfig.Idle
	c.Output = t.TempDir()
	return c
}

func TestSelfPlayRun(t *testing.T) {
	c := idleConfig(t)
	exp, err := New(c, 0, c.NewParameters(), nil)
	require.NoError(t, err)

	calls := 0
	exp.OnStep(func() { calls++ })

	require.NoError(t, exp.Run(context.Background()))
	assert.Equal(t, uint(12), exp.Steps())
	assert.Equal(t, 12, calls)
	assert.Equal(t, 3, exp.Episodes())

	require.NoError(t, exp.Save())
	for _, side := range []tennis.Side{tennis.Left, tennis.Right} {
		prefix := filepath.Join(c.Output, "arena-0-"+side.String())

		returns, err := tracker.LoadData[float64](prefix + ".return")
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, returns)

		lengths, err := tracker.LoadData[int](prefix + ".length")
		require.NoError(t, err)
		assert.Equal(t, []int{5, 5}, lengths)

		energies, err := tracker.LoadData[float64](prefix + ".energy")
		require.NoError(t, err)
		require.Len(t, energies, 2)
		assert.InDelta(t, 0.0, energies[0], 1e-12)
	}
}

func TestSelfPlayCancelled(t *testing.T) {
	c := idleConfig(t)
	exp, err := New(c, 1, c.NewParameters(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, exp.Run(ctx), context.Canceled)
	assert.Equal(t, uint(0), exp.Steps())
}

func TestSelfPlayRegister(t *testing.T) {
	c := idleConfig(t)
	c.Output = ""
	c.LeftPolicy = envconfig.Heuristic
	c.RightPolicy = envconfig.Uniform

	exp, err := New(c, 2, c.NewParameters(), nil)
	require.NoError(t, err)
	assert.Equal(t, "arena-2", exp.Arena().Name())

	left := trackers.NewEpisodeLength(filepath.Join(t.TempDir(), "left"))
	exp.Register(tennis.Left, left)

	require.NoError(t, exp.Run(context.Background()))
	assert.NotEmpty(t, left.Lengths())
	require.NoError(t, exp.Save())
}

func TestNewSelfPlay(t *testing.T) {
	c := idleConfig(t)
	a, err := New(c, 3, c.NewParameters(), nil)
	require.NoError(t, err)

	exp := NewSelfPlay(a.Arena(), policy.NewIdle(), policy.NewIdle(), 3, nil)
	require.NoError(t, exp.Run(context.Background()))
	assert.Equal(t, uint(3), exp.Steps())
	assert.Equal(t, 1, exp.Episodes())
}

func TestNewUnknownPolicy(t *testing.T) {
	c := idleConfig(t)
	c.LeftPolicy = "Clever"

	_, err := New(c, 0, c.NewParameters(), nil)
	assert.Error(t, err)
}

func TestPolicyIndependentOfServe(t *testing.T) {
	const runs = 200

	matches := 0
	for seed := uint64(0); seed < runs; seed++ {
		c := idleConfig(t)
		c.Output = ""
		c.Seed = seed
		c.LeftPolicy = envconfig.Uniform

		exp, err := New(c, 0, c.NewParameters(), nil)
		require.NoError(t, err)

		steps, err := exp.Arena().Reset()
		require.NoError(t, err)

		court := exp.Arena().Court()
		leftServe := court.Ball().Position().X < court.Origin().X

		action := exp.policies[tennis.Left].SelectAction(steps[tennis.Left])
		if (action.AtVec(1) > 0) == leftServe {
			matches++
		}
	}

	// The serve and the first action come from independent streams, so
	// they should agree about half the time
	assert.Greater(t, matches, runs/2-40)
	assert.Less(t, matches, runs/2+40)
}
