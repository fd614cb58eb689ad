package game

import (
	"context"

	"labtycoon/internal/academia"
	"labtycoon/internal/feed"
)

// advanceWorkers drifts every worker's stress up and hope down, sums
// their research output into the ledger, and rolls burnout warnings
// and attrition. Nothing ever moves stress down or hope up.
func (e *Engine) advanceWorkers(ctx context.Context, res *TickResult) error {
	ws, err := e.Workers.List(ctx)
	if err != nil {
		return err
	}

	var output float64
	updates := make([]academia.Worker, 0, len(ws))

	for i := range ws {
		w := ws[i]
		wt, ok := academia.TypeByName(w.Type)
		if !ok {
			// Unknown role from an old save: treat as a generic hire.
			wt = academia.WorkerType{Productivity: 0.5, StressRate: 1.0}
		}

		w.Stress += wt.StressRate * e.Balance.StressTickFactor
		w.Stats.Hope = max(0, w.Stats.Hope-e.Balance.HopeDecayPerTick)
		w.Stats.Caffeine = min(100, w.Stats.Caffeine+e.Balance.CaffeineGainPerTick)

		output += w.Output(wt.Productivity)

		if w.Stress > 80 && e.RNG.Float64() < e.Balance.BurnoutWarnChance {
			w.BurnoutCount++
			e.note(feed.KindBurnoutWarning, "%s was found crying in the cold room", w.Name)
		}

		if w.AtBreakingPoint() && e.RNG.Float64() < e.Balance.AttritionChance {
			if _, err := e.Workers.Remove(ctx, w.ID); err != nil {
				return err
			}
			if err := e.releaseWriter(ctx, w.ID); err != nil {
				return err
			}
			e.stats.Burnouts++
			e.stats.DreamsDestroyed++
			res.WorkersQuit++
			e.note(feed.KindAttrition, "%s quit to open a bakery", w.Name)
			continue
		}

		updates = append(updates, w)
	}

	if err := e.Workers.UpdateMany(ctx, updates); err != nil {
		return err
	}

	research := output * e.Balance.AcademiaOutputFactor
	e.Ledger.CreditResearch(research)
	res.ResearchProduced = research
	return nil
}

// releaseWriter clears a departed worker from any active grant; the
// application keeps its already-computed success rate.
func (e *Engine) releaseWriter(ctx context.Context, workerID string) error {
	as, err := e.Grants.Actives(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range as {
		if as[i].AssignedWriterID == workerID {
			as[i].AssignedWriterID = ""
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return e.Grants.ReplaceActives(ctx, as)
}
