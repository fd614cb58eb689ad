package game

import (
	"context"

	"labtycoon/internal/academia"
)

// TickResult summarizes what one tick did, for logging and the change
// notification published to subscribers.
type TickResult struct {
	Tick                 int64   `json:"tick"`
	ExperimentsCompleted int     `json:"experimentsCompleted"`
	ExperimentsSucceeded int     `json:"experimentsSucceeded"`
	ResearchProduced     float64 `json:"researchProduced"`
	WorkersQuit          int     `json:"workersQuit"`
	OpportunitiesAdded   int     `json:"opportunitiesAdded"`
	OpportunitiesExpired int     `json:"opportunitiesExpired"`
	GrantsResolved       int     `json:"grantsResolved"`
	GrantsAwarded        int     `json:"grantsAwarded"`
	CrisisTriggered      bool    `json:"crisisTriggered"`
	Settlement           float64 `json:"settlement"`
	Funding              float64 `json:"funding"`
	ResearchPoints       float64 `json:"researchPoints"`
}

// Tick advances the simulation one step. Subsystems run in a fixed
// order; outputs land before salaries are settled so a healthy lab
// never dips negative mid-tick. A failing subsystem is logged and the
// rest of the tick still runs; Tick itself never fails.
func (e *Engine) Tick(ctx context.Context) TickResult {
	e.tick++
	res := TickResult{Tick: e.tick}

	if err := e.advanceExperiments(ctx, &res); err != nil {
		e.Log.Error("experiment phase failed", "tick", e.tick, "err", err)
	}
	if err := e.advanceWorkers(ctx, &res); err != nil {
		e.Log.Error("academia phase failed", "tick", e.tick, "err", err)
	}
	if err := e.rotateOpportunities(ctx, &res); err != nil {
		e.Log.Error("grant rotation failed", "tick", e.tick, "err", err)
	}
	if err := e.advanceActiveGrants(ctx, &res); err != nil {
		e.Log.Error("grant resolution failed", "tick", e.tick, "err", err)
	}
	e.maybeTriggerCrisis(&res)
	if err := e.settle(ctx, &res); err != nil {
		e.Log.Error("settlement failed", "tick", e.tick, "err", err)
	}

	res.Funding, res.ResearchPoints = e.Ledger.Balances()
	return res
}

// settle nets passive discovery income against recurring salaries,
// maintenance, and (on the stipend period) stipends, in one atomic
// ledger application.
func (e *Engine) settle(ctx context.Context, res *TickResult) error {
	nSci, err := e.Scientists.Count(ctx)
	if err != nil {
		return err
	}
	nEq, err := e.Equipment.Count(ctx)
	if err != nil {
		return err
	}
	ws, err := e.Workers.List(ctx)
	if err != nil {
		return err
	}

	delta := float64(e.stats.DiscoveryCount)*e.Balance.PassiveIncomePerDiscovery -
		float64(nSci)*e.Balance.ScientistSalary -
		float64(nEq)*e.Balance.EquipmentUpkeep -
		float64(len(ws))*e.Balance.WorkerUpkeep

	if p := e.Balance.StipendPeriodTicks; p > 0 && e.tick%int64(p) == 0 && len(ws) > 0 {
		for i := range ws {
			if wt, ok := academia.TypeByName(ws[i].Type); ok {
				delta -= wt.Stipend
			}
			ws[i].MonthsWorked++
		}
		if err := e.Workers.UpdateMany(ctx, ws); err != nil {
			return err
		}
	}

	e.Ledger.ApplyDelta(delta, 0)
	res.Settlement = delta
	return nil
}
