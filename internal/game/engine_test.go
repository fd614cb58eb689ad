package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"labtycoon/internal/academia"
	"labtycoon/internal/config"
	"labtycoon/internal/equipment"
	"labtycoon/internal/feed"
	"labtycoon/internal/grant"
	"labtycoon/internal/scientist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngineForTest builds an engine with every random hazard switched
// off; tests re-enable exactly the knobs they exercise.
func newEngineForTest(seed int64, tweak func(*config.Balance)) (*Engine,
	*scientist.MemoryRepo,
	*equipment.MemoryRepo,
	*academia.MemoryRepo,
	*grant.MemoryRepo,
) {
	b := config.DefaultBalance()
	b.ExhaustionChance = 0
	b.GrantSpawnChance = 0
	b.CrisisChance = 0
	b.BurnoutWarnChance = 0
	b.AttritionChance = 0
	if tweak != nil {
		tweak(&b)
	}

	sRepo := scientist.NewMemoryRepo()
	eRepo := equipment.NewMemoryRepo()
	wRepo := academia.NewMemoryRepo()
	gRepo := grant.NewMemoryRepo()

	e := New(Params{
		Scientists: sRepo,
		Equipment:  eRepo,
		Workers:    wRepo,
		Grants:     gRepo,
		Feed:       feed.NewLog(1024),
		Clock:      NewFakeClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)),
		Balance:    b,
		RNG:        rand.New(rand.NewSource(seed)),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return e, sRepo, eRepo, wRepo, gRepo
}

func TestNew_FreshLabState(t *testing.T) {
	e, _, _, _, _ := newEngineForTest(1, nil)

	f, r := e.Ledger.Balances()
	assert.Equal(t, 50000.0, f)
	assert.Equal(t, 0.0, r)
	assert.True(t, e.Unlocked("microscope"))
	assert.True(t, e.Unlocked("computer"))
	assert.False(t, e.Unlocked("sequencer"))
	assert.Equal(t, int64(0), e.TickCount())

	research := e.Research()
	require.Len(t, research, 4)
	for _, b := range Branches() {
		assert.Equal(t, 0, research[b].Level)
	}
}

func TestBootstrapFresh_SeedsOpportunities(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, gRepo := newEngineForTest(2, nil)

	require.NoError(t, e.BootstrapFresh(ctx, 3))
	os, err := gRepo.Opportunities(ctx)
	require.NoError(t, err)
	require.Len(t, os, 3, "a fresh lab always opens with the full board")

	seen := map[string]bool{}
	for _, o := range os {
		assert.False(t, seen[o.Agency.Name], "no duplicate agency on the fresh board")
		seen[o.Agency.Name] = true
		assert.GreaterOrEqual(t, o.TotalTime, 60)
		assert.LessOrEqual(t, o.TotalTime, 120)
	}
}

func TestBootstrapFresh_CapsAtAgencyCount(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, gRepo := newEngineForTest(8, nil)

	require.NoError(t, e.BootstrapFresh(ctx, 99))
	os, err := gRepo.Opportunities(ctx)
	require.NoError(t, err)
	assert.Len(t, os, len(grant.Agencies()))
}

func TestTick_NeverPanicsOnEmptyLab(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(3, nil)

	for i := 0; i < 100; i++ {
		res := e.Tick(ctx)
		assert.Equal(t, int64(i+1), res.Tick)
	}
	f, _ := e.Ledger.Balances()
	assert.Equal(t, 50000.0, f, "an empty lab has no expenses")
}

func TestTick_DeterministicGivenSeed(t *testing.T) {
	ctx := context.Background()

	run := func() (float64, float64, Stats) {
		e, sRepo, eRepo, wRepo, _ := newEngineForTest(99, func(b *config.Balance) {
			b.ExhaustionChance = 0.05
			b.GrantSpawnChance = 0.5
			b.CrisisChance = 0 // crises stay pending and would need identical resolution
		})
		require.NoError(t, sRepo.Seed(ctx, []scientist.Scientist{
			{ID: "s1", Name: "Dr. A", Level: 1, Stats: scientist.Stats{Intelligence: 80, Speed: 100, Luck: 60}, AssignedEquipmentID: "e1"},
		}))
		require.NoError(t, eRepo.Seed(ctx, []equipment.Equipment{
			{ID: "e1", Kind: "microscope", Level: 1, Condition: 100, AssignedScientistID: "s1"},
		}))
		require.NoError(t, wRepo.Seed(ctx, []academia.Worker{
			{ID: "w1", Type: "technician", Name: "Sam", Skill: 5, Stats: academia.Stats{Intelligence: 70, Hope: 50}},
		}))
		for i := 0; i < 120; i++ {
			e.Tick(ctx)
		}
		f, r := e.Ledger.Balances()
		return f, r, e.StatsView()
	}

	f1, r1, st1 := run()
	f2, r2, st2 := run()
	assert.Equal(t, f1, f2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, st1, st2)
}
