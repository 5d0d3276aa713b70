package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
	ts "github.com/samuelfneumann/tennisrl/timestep"
)

type params map[string]float64

func (p params) Parameter(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

func newArena(t testing.TB, cutoff, physicsSteps int) *Arena {
	t.Helper()

	a, err := New(Config{
		Name:          "test",
		Origin:        r3.Vec{X: 100, Y: 0, Z: 0},
		Seed:          7,
		Parameters:    params{},
		EpisodeCutoff: cutoff,
		PhysicsSteps:  physicsSteps,
		Discount:      0.99,
	})
	require.NoError(t, err)
	return a
}

func idle() mat.Vector {
	return mat.NewVecDense(tennis.ActionSize, nil)
}

func TestNewRequiresParameters(t *testing.T) {
	_, err := New(Config{Name: "test"})
	assert.Error(t, err)

	_, err = New(Config{Name: "test", Parameters: params{},
		PhysicsSteps: -1})
	assert.Error(t, err)
}

func TestRoles(t *testing.T) {
	a := newArena(t, 0, 1)

	assert.Equal(t, tennis.MatchResetOwner, a.Agent(tennis.Left).Role())
	assert.Equal(t, tennis.Follower, a.Agent(tennis.Right).Role())
	assert.Equal(t, tennis.Left, a.Agent(tennis.Left).Side())
	assert.Equal(t, tennis.Right, a.Agent(tennis.Right).Side())
}

func TestStepBeforeReset(t *testing.T) {
	a := newArena(t, 0, 1)

	_, _, err := a.Step(idle(), idle())
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	a := newArena(t, 0, 1)

	steps, err := a.Reset()
	require.NoError(t, err)
	require.Len(t, steps, 2)

	for _, step := range steps {
		assert.True(t, step.First())
		assert.Equal(t, 0, step.Number)
		assert.Equal(t, 0.99, step.Discount)
		require.Equal(t, tennis.ObservationSize, step.Observation.Len())

		// Both rackets see themselves on the left of the net
		x := step.Observation.AtVec(0)
		assert.GreaterOrEqual(t, x, -tennis.MaxStartX-1e-9)
		assert.LessOrEqual(t, x, -tennis.MinStartX+1e-9)

		// The ball has just been served
		assert.Equal(t, 1.0, step.Observation.AtVec(13))
	}
}

func TestStepActionValidation(t *testing.T) {
	a := newArena(t, 0, 1)
	_, err := a.Reset()
	require.NoError(t, err)

	_, _, err = a.Step(idle())
	assert.Error(t, err)

	_, _, err = a.Step(idle(), mat.NewVecDense(2, nil))
	assert.Error(t, err)

	steps, _, err := a.Step(idle(), idle())
	require.NoError(t, err)
	assert.Equal(t, 1, steps[0].Number)
	assert.True(t, steps[0].Mid())
}

func TestEpisodeCutoff(t *testing.T) {
	const cutoff = 5
	a := newArena(t, cutoff, 1)
	_, err := a.Reset()
	require.NoError(t, err)

	var steps []ts.TimeStep
	var last bool
	for i := 0; i < cutoff; i++ {
		require.False(t, last, "episode ended early at step %v", i)
		steps, last, err = a.Step(idle(), idle())
		require.NoError(t, err)
	}

	assert.True(t, last)
	for _, step := range steps {
		assert.True(t, step.Last())
		assert.Equal(t, ts.Timeout, step.EndType())
		assert.Equal(t, cutoff, step.Number)
	}

	_, _, err = a.Step(idle(), idle())
	assert.Error(t, err)
}

func TestPointEndsEpisode(t *testing.T) {
	a := newArena(t, 0, 5)
	_, err := a.Reset()
	require.NoError(t, err)

	var steps []ts.TimeStep
	last := false
	for i := 0; i < 200 && !last; i++ {
		steps, last, err = a.Step(idle(), idle())
		require.NoError(t, err)
	}
	require.True(t, last, "served ball never landed")

	left, right := steps[tennis.Left], steps[tennis.Right]
	assert.Equal(t, ts.Point, left.EndType())
	assert.Equal(t, ts.Point, right.EndType())
	assert.Equal(t, 0.0, left.Reward+right.Reward)
	assert.ElementsMatch(t, []float64{WinReward, LoseReward},
		[]float64{left.Reward, right.Reward})

	winner := tennis.Left
	if right.Reward > 0 {
		winner = tennis.Right
	}
	assert.Equal(t, 1, a.Agent(winner).Score())
	assert.Equal(t, 0, a.Agent(winner.Opposite()).Score())

	// Scores carry over between episodes and are shown on the next action
	_, err = a.Reset()
	require.NoError(t, err)
	_, _, err = a.Step(idle(), idle())
	require.NoError(t, err)
	assert.Equal(t, 1, a.Scoreboard(winner).Displayed())
	assert.Equal(t, 0, a.Scoreboard(winner.Opposite()).Displayed())
}

func TestSpecs(t *testing.T) {
	a := newArena(t, 0, 1)

	assert.Equal(t, tennis.ObservationSize, a.ObservationSpec().Shape.Len())
	assert.Equal(t, tennis.ActionSize, a.ActionSpec().Shape.Len())
	assert.Equal(t, 0.99, a.DiscountSpec().LowerBound.AtVec(0))
	assert.Equal(t, 0.99, a.DiscountSpec().UpperBound.AtVec(0))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, Seed(1, "a"), Seed(1, "a"))
	assert.NotEqual(t, Seed(1, "a"), Seed(2, "a"))
	assert.NotEqual(t, Seed(1, "a"), Seed(1, "b"))
}

func TestComponentSeedsDistinct(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		seeds := map[string]uint64{
			"court":         CourtSeed(seed),
			"left starter":  StarterSeed(seed, tennis.Left),
			"right starter": StarterSeed(seed, tennis.Right),
			"left policy":   PolicySeed(seed, tennis.Left),
			"right policy":  PolicySeed(seed, tennis.Right),
		}

		seen := make(map[uint64]string, len(seeds))
		for name, s := range seeds {
			other, ok := seen[s]
			assert.False(t, ok, "seed %v: %v and %v share seed %v", seed,
				name, other, s)
			seen[s] = name
		}

		assert.Equal(t, CourtSeed(seed), CourtSeed(seed))
		assert.Equal(t, PolicySeed(seed, tennis.Left),
			PolicySeed(seed, tennis.Left))
	}
}
