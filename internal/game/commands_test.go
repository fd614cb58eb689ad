package game

import (
	"context"
	"testing"

	"labtycoon/internal/academia"
	"labtycoon/internal/config"
	"labtycoon/internal/econ"
	"labtycoon/internal/equipment"
	"labtycoon/internal/grant"
	"labtycoon/internal/scientist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_OpeningPlaythrough(t *testing.T) {
	ctx := context.Background()
	e, sRepo, eRepo, _, _ := newEngineForTest(42, func(b *config.Balance) {
		zeroExpenses(b)
		b.FailureFundingFraction = 1
		b.FailureResearchFraction = 1
	})

	cands := e.ScientistCandidates(3)
	require.Len(t, cands, 3)
	var pick scientist.Candidate
	for _, c := range cands {
		if c.Cost == 5000 {
			pick = c
			break
		}
	}
	if pick.Name == "" {
		pick = cands[0]
	}

	s, err := e.HireScientist(ctx, pick)
	require.NoError(t, err)
	f, _ := e.Ledger.Balances()
	assert.Equal(t, 50000.0-pick.Cost, f)

	eq, err := e.BuyEquipment(ctx, 0, "microscope")
	require.NoError(t, err)
	f, _ = e.Ledger.Balances()
	assert.Equal(t, 45000.0-pick.Cost, f)

	require.NoError(t, e.AssignScientist(ctx, s.ID, eq.ID))
	before := f

	// Even the slowest rollable scientist (speed 30) finishes a run
	// inside 170 ticks.
	for i := 0; i < 250; i++ {
		e.Tick(ctx)
		if e.StatsView().TotalExperiments > 0 {
			break
		}
	}
	require.Positive(t, e.StatsView().TotalExperiments)

	f, r := e.Ledger.Balances()
	assert.Equal(t, before+2000, f, "full salvage fractions pay out either way")
	assert.Equal(t, 15.0, r)

	got, _, err := sRepo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AssignedEquipmentID, "scientist steps off the bench after a result")
	gotEq, _, err := eRepo.Get(ctx, eq.ID)
	require.NoError(t, err)
	assert.Empty(t, gotEq.AssignedScientistID)
}

func TestBuyEquipment_Rejections(t *testing.T) {
	ctx := context.Background()
	e, _, eRepo, _, _ := newEngineForTest(1, zeroExpenses)

	_, err := e.BuyEquipment(ctx, 0, "flux_capacitor")
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = e.BuyEquipment(ctx, 0, "sequencer")
	assert.ErrorIs(t, err, ErrEquipmentLocked)

	_, err = e.BuyEquipment(ctx, 7, "microscope")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	_, err = e.BuyEquipment(ctx, -1, "microscope")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = e.BuyEquipment(ctx, 0, "microscope")
	require.NoError(t, err)
	_, err = e.BuyEquipment(ctx, 0, "computer")
	assert.ErrorIs(t, err, ErrSlotOccupied)

	n, err := eRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "every rejection leaves the floor unchanged")
	f, _ := e.Ledger.Balances()
	assert.Equal(t, 45000.0, f)
}

func TestBuyEquipment_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	e, _, eRepo, _, _ := newEngineForTest(2, zeroExpenses)
	e.Ledger.Reset(100, 0)

	_, err := e.BuyEquipment(ctx, 0, "microscope")
	assert.ErrorIs(t, err, econ.ErrInsufficientFunds)

	f, _ := e.Ledger.Balances()
	assert.Equal(t, 100.0, f)
	n, err := eRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHireScientist_RosterCap(t *testing.T) {
	ctx := context.Background()
	e, sRepo, _, _, _ := newEngineForTest(3, func(b *config.Balance) {
		zeroExpenses(b)
		b.MaxScientists = 1
	})
	e.Ledger.Reset(1000000, 0)

	_, err := e.HireScientist(ctx, e.ScientistCandidates(1)[0])
	require.NoError(t, err)

	_, err = e.HireScientist(ctx, e.ScientistCandidates(1)[0])
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	n, err := sRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFireScientist_FreesEquipment(t *testing.T) {
	ctx := context.Background()
	e, sRepo, eRepo, _, _ := newEngineForTest(4, zeroExpenses)
	seedBench(t, ctx, sRepo, eRepo, 40)

	require.NoError(t, e.FireScientist(ctx, "s1"))

	n, err := sRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	eq, _, err := eRepo.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, eq.AssignedScientistID)
	assert.Zero(t, eq.ExperimentProgress)
}

func TestHireAcademiaWorker_TypeAndCap(t *testing.T) {
	ctx := context.Background()
	e, _, _, wRepo, _ := newEngineForTest(5, func(b *config.Balance) {
		zeroExpenses(b)
		b.MaxWorkers = 1
	})

	_, err := e.HireAcademiaWorker(ctx, "middle_manager")
	assert.ErrorIs(t, err, ErrInvalidReference)

	w, err := e.HireAcademiaWorker(ctx, "technician")
	require.NoError(t, err)
	assert.Equal(t, "technician", w.Type)
	assert.NotEmpty(t, w.Name)
	f, _ := e.Ledger.Balances()
	assert.Equal(t, 44000.0, f, "technician hire costs 6000")

	_, err = e.HireAcademiaWorker(ctx, "undergrad")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	n, err := wRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFireAcademiaWorker_ReleasesWriter(t *testing.T) {
	ctx := context.Background()
	e, _, _, wRepo, gRepo := newEngineForTest(6, zeroExpenses)
	require.NoError(t, wRepo.Seed(ctx, []academia.Worker{{
		ID: "w1", Type: academia.TypeGrantWriter, Name: "Jordan", Skill: 5,
		Stats: academia.Stats{Intelligence: 70, Hope: 50},
	}}))
	require.NoError(t, gRepo.AddActive(ctx, grant.Active{
		ID: "a1", Agency: grant.Agencies()[0], TimeRemaining: 10, TotalTime: 10,
		SuccessRate: 18, AssignedWriterID: "w1",
	}))

	require.NoError(t, e.FireAcademiaWorker(ctx, "w1"))

	as, err := gRepo.Actives(ctx)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Empty(t, as[0].AssignedWriterID, "the application keeps running unstaffed")

	err = e.FireAcademiaWorker(ctx, "w1")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestAssignScientist_OneToOneBothWays(t *testing.T) {
	ctx := context.Background()
	e, sRepo, eRepo, _, _ := newEngineForTest(7, zeroExpenses)
	require.NoError(t, sRepo.Seed(ctx, []scientist.Scientist{
		{ID: "s1", Name: "Dr. A", Level: 1, Stats: scientist.Stats{Intelligence: 50, Speed: 50, Luck: 50}},
		{ID: "s2", Name: "Dr. B", Level: 1, Stats: scientist.Stats{Intelligence: 50, Speed: 50, Luck: 50}},
	}))
	require.NoError(t, eRepo.Seed(ctx, []equipment.Equipment{
		{ID: "e1", Kind: "microscope", SlotIndex: 0, Level: 1, Condition: 100},
		{ID: "e2", Kind: "computer", SlotIndex: 1, Level: 1, Condition: 100},
	}))

	require.NoError(t, e.AssignScientist(ctx, "s1", "e1"))

	err := e.AssignScientist(ctx, "s1", "e2")
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	err = e.AssignScientist(ctx, "s2", "e1")
	assert.ErrorIs(t, err, ErrSlotOccupied)
	err = e.AssignScientist(ctx, "ghost", "e1")
	assert.ErrorIs(t, err, ErrInvalidReference)
	err = e.AssignScientist(ctx, "s2", "ghost")
	assert.ErrorIs(t, err, ErrInvalidReference)

	eq, _, err := eRepo.Get(ctx, "e2")
	require.NoError(t, err)
	assert.Empty(t, eq.AssignedScientistID)
}

func TestUnassignScientist_ResetsProgressAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e, sRepo, eRepo, _, _ := newEngineForTest(8, zeroExpenses)
	seedBench(t, ctx, sRepo, eRepo, 77)

	require.NoError(t, e.UnassignScientist(ctx, "s1"))

	eq, _, err := eRepo.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Zero(t, eq.ExperimentProgress, "walking away discards the run")
	assert.Empty(t, eq.AssignedScientistID)

	require.NoError(t, e.UnassignScientist(ctx, "s1"), "unassigning an idle scientist is a no-op")
	assert.ErrorIs(t, e.UnassignScientist(ctx, "ghost"), ErrInvalidReference)
}

func TestUpgradeResearch_CostsAndUnlocks(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(9, zeroExpenses)

	_, err := e.UpgradeResearch(ctx, BranchBiology)
	assert.ErrorIs(t, err, econ.ErrInsufficientResearch)

	e.Ledger.Reset(50000, 2000)

	st, err := e.UpgradeResearch(ctx, BranchBiology)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Level)
	_, r := e.Ledger.Balances()
	assert.Equal(t, 1950.0, r, "level 1 costs 50 points")
	assert.True(t, e.Unlocked("centrifuge"))
	assert.Equal(t, 1, e.StatsView().DiscoveryCount)

	for i := 0; i < 3; i++ {
		_, err = e.UpgradeResearch(ctx, BranchBiology)
		require.NoError(t, err)
	}
	assert.True(t, e.Unlocked("pcr"))
	assert.True(t, e.Unlocked("sequencer"))

	_, err = e.UpgradeResearch(ctx, BranchBiology)
	assert.ErrorIs(t, err, ErrResearchMaxed)

	_, err = e.UpgradeResearch(ctx, Branch("astrology"))
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpgradeResearch_FeedsPassiveIncome(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(10, nil)
	e.Ledger.Reset(50000, 100)

	_, err := e.UpgradeResearch(ctx, BranchChemistry)
	require.NoError(t, err)

	res := e.Tick(ctx)
	assert.Equal(t, 100.0, res.Settlement, "one discovery pays 100 per tick")
}
