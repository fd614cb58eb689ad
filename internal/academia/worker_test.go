package academia

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll_RangesPerType(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		w := Roll(rng, TypeGrantWriter)
		assert.Equal(t, TypeGrantWriter, w.Type)
		assert.GreaterOrEqual(t, w.Skill, 3)
		assert.LessOrEqual(t, w.Skill, 7)
		assert.GreaterOrEqual(t, w.Stats.Intelligence, 40.0)
		assert.LessOrEqual(t, w.Stats.Intelligence, 95.0)
		assert.GreaterOrEqual(t, w.Stats.Desperation, 60.0)
		assert.LessOrEqual(t, w.Stats.Desperation, 100.0)
		assert.GreaterOrEqual(t, w.Stats.Hope, 10.0)
		assert.LessOrEqual(t, w.Stats.Hope, 80.0)
		assert.Equal(t, 0.0, w.Stress)
	}
}

func TestTypeCatalog(t *testing.T) {
	wt, ok := TypeByName(TypeGrantWriter)
	require.True(t, ok)
	assert.Equal(t, 8000.0, wt.HireCost)

	_, ok = TypeByName("tenured_professor")
	assert.False(t, ok, "tenure does not exist here")
}

func TestAtBreakingPoint(t *testing.T) {
	w := Worker{Stress: 101, Stats: Stats{Hope: 50}}
	assert.True(t, w.AtBreakingPoint())

	w = Worker{Stress: 50, Stats: Stats{Hope: 5}}
	assert.True(t, w.AtBreakingPoint())

	w = Worker{Stress: 100, Stats: Stats{Hope: 5.1}}
	assert.False(t, w.AtBreakingPoint())
}

func TestOutput_StressScalesDown(t *testing.T) {
	w := Worker{Stats: Stats{Intelligence: 100}}
	assert.InDelta(t, 1.0, w.Output(1.0), 1e-9)

	w.Stress = 150
	assert.Equal(t, 0.0, w.Output(1.0))

	w.Stress = 300
	assert.Equal(t, 0.0, w.Output(1.0), "output never goes negative")

	w.Stress = 75
	assert.InDelta(t, 0.5, w.Output(1.0), 1e-9)
}
