package game

import (
	"context"

	"labtycoon/internal/feed"
	"labtycoon/internal/grant"
)

// rotateOpportunities ages the visible listings, drops the expired
// ones, and occasionally lists an agency that is not currently on the
// board.
func (e *Engine) rotateOpportunities(ctx context.Context, res *TickResult) error {
	opps, err := e.Grants.Opportunities(ctx)
	if err != nil {
		return err
	}

	kept := opps[:0]
	for _, o := range opps {
		o.TimeRemaining--
		if o.TimeRemaining <= 0 {
			res.OpportunitiesExpired++
			e.note(feed.KindOpportunityLapsed, "the %s deadline passed unclaimed", o.Agency.Name)
			continue
		}
		kept = append(kept, o)
	}

	if len(kept) < e.Balance.MaxOpportunities && e.RNG.Float64() < e.Balance.GrantSpawnChance {
		listed := make(map[string]bool, len(kept))
		for _, o := range kept {
			listed[o.Agency.Name] = true
		}
		var unused []grant.Agency
		for _, a := range grant.Agencies() {
			if !listed[a.Name] {
				unused = append(unused, a)
			}
		}
		if len(unused) > 0 {
			a := unused[e.RNG.Intn(len(unused))]
			o := grant.NewOpportunity(e.RNG, a, e.Balance.OpportunityMinDuration, e.Balance.OpportunityMaxDuration)
			kept = append(kept, o)
			res.OpportunitiesAdded++
			e.note(feed.KindOpportunityListed, "%s is accepting applications (%d ticks)", a.Name, o.TotalTime)
		}
	}

	return e.Grants.ReplaceOpportunities(ctx, kept)
}

// advanceActiveGrants counts down every claimed application and
// resolves the ones that reach zero with a single weighted roll. The
// grant is removed either way, freeing its writer.
func (e *Engine) advanceActiveGrants(ctx context.Context, res *TickResult) error {
	as, err := e.Grants.Actives(ctx)
	if err != nil {
		return err
	}

	kept := as[:0]
	for _, a := range as {
		a.TimeRemaining--
		if a.TimeRemaining > 0 {
			kept = append(kept, a)
			continue
		}

		res.GrantsResolved++
		if e.RNG.Float64()*100 < a.SuccessRate {
			award := a.Agency.MinAward + e.RNG.Float64()*(a.Agency.MaxAward-a.Agency.MinAward)
			e.Ledger.CreditFunding(award)
			res.GrantsAwarded++
			e.note(feed.KindGrantAwarded, "%s funded the lab: $%.0f", a.Agency.Name, award)
		} else {
			e.stats.DreamsDestroyed++
			e.note(feed.KindGrantRejected, "%s regrets to inform you", a.Agency.Name)
		}
	}

	return e.Grants.ReplaceActives(ctx, kept)
}
