package grant

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpportunity_DurationWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := Agencies()[0]
	for i := 0; i < 30; i++ {
		o := NewOpportunity(rng, a, 60, 120)
		assert.GreaterOrEqual(t, o.TotalTime, 60)
		assert.LessOrEqual(t, o.TotalTime, 120)
		assert.Equal(t, o.TotalTime, o.TimeRemaining)
		assert.NotEmpty(t, o.ID)
	}
}

func TestClaim_CarriesAgencyAndWriter(t *testing.T) {
	o := Opportunity{ID: "o1", Agency: Agencies()[1], TimeRemaining: 40, TotalTime: 90}
	a := Claim(o, 20, 15, "w1")
	assert.Equal(t, o.Agency, a.Agency)
	assert.Equal(t, 20, a.TimeRemaining)
	assert.Equal(t, 20, a.TotalTime)
	assert.Equal(t, 15.0, a.SuccessRate)
	assert.Equal(t, "w1", a.AssignedWriterID)
	assert.NotEqual(t, o.ID, a.ID)
}

func TestMemoryRepo_TakeOpportunity(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	require.NoError(t, r.AddOpportunity(ctx, Opportunity{ID: "o1"}))
	require.NoError(t, r.AddOpportunity(ctx, Opportunity{ID: "o2"}))

	o, ok, err := r.TakeOpportunity(ctx, "o1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "o1", o.ID)

	_, ok, err = r.TakeOpportunity(ctx, "o1")
	require.NoError(t, err)
	assert.False(t, ok)

	os, err := r.Opportunities(ctx)
	require.NoError(t, err)
	require.Len(t, os, 1)
	assert.Equal(t, "o2", os[0].ID)
}

func TestMemoryRepo_ReplaceActives_CopiesInput(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	in := []Active{{ID: "a1"}}
	require.NoError(t, r.ReplaceActives(ctx, in))
	in[0].ID = "mutated"

	as, err := r.Actives(ctx)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, "a1", as[0].ID)
}

func TestAgencyCatalog(t *testing.T) {
	require.NotEmpty(t, Agencies())
	for _, a := range Agencies() {
		assert.NotEmpty(t, a.Name)
		assert.Greater(t, a.SuccessRate, 0.0)
		assert.LessOrEqual(t, a.MinAward, a.MaxAward)
	}
}
