package game

import (
	"context"

	"labtycoon/internal/equipment"
	"labtycoon/internal/feed"
	"labtycoon/internal/scientist"
)

// advanceExperiments moves every staffed instrument toward completion
// and resolves runs that reach 100%, then rolls exhaustion for the
// working scientists.
func (e *Engine) advanceExperiments(ctx context.Context, res *TickResult) error {
	equips, err := e.Equipment.List(ctx)
	if err != nil {
		return err
	}
	scis, err := e.Scientists.List(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]*scientist.Scientist, len(scis))
	for i := range scis {
		byID[scis[i].ID] = &scis[i]
	}

	for i := range equips {
		eq := &equips[i]
		if eq.AssignedScientistID == "" {
			continue
		}
		sci, ok := byID[eq.AssignedScientistID]
		if !ok {
			// Assignment points at a fired scientist; heal in place.
			eq.ClearRun()
			continue
		}
		if sci.Exhausted {
			continue
		}

		rate := sci.Stats.Speed / 100 * (float64(eq.Level)*0.5 + 0.5)
		eq.ExperimentProgress += rate * 2
		if eq.ExperimentProgress < 100 {
			continue
		}
		e.resolveExperiment(eq, sci, res)
	}

	// Exhaustion is an independent hazard of being on an experiment.
	for i := range scis {
		sci := &scis[i]
		if sci.Exhausted {
			sci.ExhaustionTimer--
			if sci.ExhaustionTimer <= 0 {
				sci.Exhausted = false
				sci.ExhaustionTimer = 0
				e.note(feed.KindRecovery, "%s is back on their feet", sci.Name)
			}
			continue
		}
		if sci.Working() && e.RNG.Float64() < e.Balance.ExhaustionChance {
			sci.Exhausted = true
			sci.ExhaustionTimer = e.Balance.ExhaustionRecoveryTicks
			e.note(feed.KindExhaustion, "%s collapsed at the bench", sci.Name)
		}
	}

	if err := e.Scientists.UpdateMany(ctx, scis); err != nil {
		return err
	}
	return e.Equipment.UpdateMany(ctx, equips)
}

func (e *Engine) resolveExperiment(eq *equipment.Equipment, sci *scientist.Scientist, res *TickResult) {
	chance := min(
		0.5+sci.Stats.Intelligence/200+sci.Stats.Luck/300+float64(eq.Level)*0.1,
		0.95,
	)

	e.stats.TotalExperiments++
	res.ExperimentsCompleted++

	if e.RNG.Float64() < chance {
		fundingReward := e.Balance.ExperimentFundingPerLevel * float64(eq.Level)
		researchReward := e.Balance.ExperimentResearchPerLevel * float64(eq.Level)
		e.Ledger.CreditFunding(fundingReward)
		e.Ledger.CreditResearch(researchReward)
		sci.GainXP(20, e.RNG)
		e.stats.SuccessfulExperiments++
		res.ExperimentsSucceeded++
		e.note(feed.KindExperimentSuccess, "%s finished a successful run on the %s (+$%.0f, +%.0f RP)",
			sci.Name, eq.Kind, fundingReward, researchReward)
	} else {
		// Partial salvage: a failed run still yields scraps.
		fundingReward := e.Balance.ExperimentFundingPerLevel * float64(eq.Level) * e.Balance.FailureFundingFraction
		researchReward := e.Balance.ExperimentResearchPerLevel * float64(eq.Level) * e.Balance.FailureResearchFraction
		e.Ledger.CreditFunding(fundingReward)
		e.Ledger.CreditResearch(researchReward)
		sci.GainXP(5, e.RNG)
		e.note(feed.KindExperimentFailure, "%s's run on the %s failed (salvaged $%.0f, %.1f RP)",
			sci.Name, eq.Kind, fundingReward, researchReward)
	}

	// Either way the bench clears and both sides return to idle.
	sci.AssignedEquipmentID = ""
	eq.ClearRun()
}
