package game

import (
	"context"
	"fmt"

	"labtycoon/internal/academia"
	"labtycoon/internal/equipment"
	"labtycoon/internal/feed"
	"labtycoon/internal/grant"
	"labtycoon/internal/scientist"
)

// Player commands. Each either mutates state and succeeds, or rejects
// with a typed error leaving every repo and the ledger untouched.
// Commands must run on the same goroutine as Tick (see Runner).

// BuyEquipment installs a new instrument into a free slot. The kind
// must exist in the catalog and be unlocked by research.
func (e *Engine) BuyEquipment(ctx context.Context, slot int, kind string) (equipment.Equipment, error) {
	k, ok := equipment.KindByName(kind)
	if !ok {
		return equipment.Equipment{}, fmt.Errorf("equipment kind %q: %w", kind, ErrInvalidReference)
	}
	if !e.unlocked[kind] {
		return equipment.Equipment{}, fmt.Errorf("equipment kind %q: %w", kind, ErrEquipmentLocked)
	}
	if slot < 0 || slot >= e.Balance.MaxEquipmentSlots {
		return equipment.Equipment{}, fmt.Errorf("slot %d: %w", slot, ErrCapacityExceeded)
	}

	existing, err := e.Equipment.List(ctx)
	if err != nil {
		return equipment.Equipment{}, err
	}
	if len(existing) >= e.Balance.MaxEquipmentSlots {
		return equipment.Equipment{}, ErrCapacityExceeded
	}
	for _, other := range existing {
		if other.SlotIndex == slot {
			return equipment.Equipment{}, fmt.Errorf("slot %d: %w", slot, ErrSlotOccupied)
		}
	}

	if err := e.Ledger.DebitFunding(k.Cost); err != nil {
		return equipment.Equipment{}, err
	}
	eq := equipment.New(kind, slot)
	if err := e.Equipment.Add(ctx, eq); err != nil {
		return equipment.Equipment{}, err
	}
	return eq, nil
}

// ScientistCandidates rolls a fresh hiring market page.
func (e *Engine) ScientistCandidates(n int) []scientist.Candidate {
	return scientist.RollCandidates(e.RNG, n)
}

func (e *Engine) HireScientist(ctx context.Context, c scientist.Candidate) (scientist.Scientist, error) {
	n, err := e.Scientists.Count(ctx)
	if err != nil {
		return scientist.Scientist{}, err
	}
	if n >= e.Balance.MaxScientists {
		return scientist.Scientist{}, fmt.Errorf("scientist roster full: %w", ErrCapacityExceeded)
	}
	if err := e.Ledger.DebitFunding(c.Cost); err != nil {
		return scientist.Scientist{}, err
	}
	s := scientist.NewFromCandidate(c)
	if err := e.Scientists.Add(ctx, s); err != nil {
		return scientist.Scientist{}, err
	}
	return s, nil
}

func (e *Engine) FireScientist(ctx context.Context, id string) error {
	s, ok, err := e.Scientists.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("scientist %q: %w", id, ErrInvalidReference)
	}
	if s.AssignedEquipmentID != "" {
		if eq, found, err := e.Equipment.Get(ctx, s.AssignedEquipmentID); err == nil && found {
			eq.ClearRun()
			if err := e.Equipment.Update(ctx, eq); err != nil {
				return err
			}
		}
	}
	_, err = e.Scientists.Remove(ctx, id)
	return err
}

func (e *Engine) HireAcademiaWorker(ctx context.Context, workerType string) (academia.Worker, error) {
	wt, ok := academia.TypeByName(workerType)
	if !ok {
		return academia.Worker{}, fmt.Errorf("worker type %q: %w", workerType, ErrInvalidReference)
	}
	n, err := e.Workers.Count(ctx)
	if err != nil {
		return academia.Worker{}, err
	}
	if n >= e.Balance.MaxWorkers {
		return academia.Worker{}, fmt.Errorf("academia roster full: %w", ErrCapacityExceeded)
	}
	if err := e.Ledger.DebitFunding(wt.HireCost); err != nil {
		return academia.Worker{}, err
	}
	w := academia.Roll(e.RNG, workerType)
	if err := e.Workers.Add(ctx, w); err != nil {
		return academia.Worker{}, err
	}
	return w, nil
}

func (e *Engine) FireAcademiaWorker(ctx context.Context, id string) error {
	_, ok, err := e.Workers.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("worker %q: %w", id, ErrInvalidReference)
	}
	if _, err := e.Workers.Remove(ctx, id); err != nil {
		return err
	}
	return e.releaseWriter(ctx, id)
}

// AssignScientist stakes a scientist to an instrument, 1:1 both ways.
func (e *Engine) AssignScientist(ctx context.Context, scientistID, equipmentID string) error {
	s, ok, err := e.Scientists.Get(ctx, scientistID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("scientist %q: %w", scientistID, ErrInvalidReference)
	}
	eq, ok, err := e.Equipment.Get(ctx, equipmentID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("equipment %q: %w", equipmentID, ErrInvalidReference)
	}
	if s.AssignedEquipmentID != "" {
		return ErrAlreadyAssigned
	}
	if eq.AssignedScientistID != "" {
		return ErrSlotOccupied
	}

	s.AssignedEquipmentID = eq.ID
	eq.AssignedScientistID = s.ID
	if err := e.Scientists.Update(ctx, s); err != nil {
		return err
	}
	return e.Equipment.Update(ctx, eq)
}

// UnassignScientist frees both sides and discards run progress.
func (e *Engine) UnassignScientist(ctx context.Context, scientistID string) error {
	s, ok, err := e.Scientists.Get(ctx, scientistID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("scientist %q: %w", scientistID, ErrInvalidReference)
	}
	if s.AssignedEquipmentID == "" {
		return nil
	}
	if eq, found, err := e.Equipment.Get(ctx, s.AssignedEquipmentID); err == nil && found {
		eq.ClearRun()
		if err := e.Equipment.Update(ctx, eq); err != nil {
			return err
		}
	}
	s.AssignedEquipmentID = ""
	return e.Scientists.Update(ctx, s)
}

// ApplyForGrant claims a listed opportunity. With a free grant writer
// the work goes faster and the odds improve with skill; with no
// writers on staff at all the lab limps along on the fallback terms.
// If writers exist but are all staffed, the claim is rejected and the
// listing stays on the board.
func (e *Engine) ApplyForGrant(ctx context.Context, opportunityID string) (grant.Active, error) {
	ws, err := e.Workers.List(ctx)
	if err != nil {
		return grant.Active{}, err
	}
	as, err := e.Grants.Actives(ctx)
	if err != nil {
		return grant.Active{}, err
	}

	busy := make(map[string]bool, len(as))
	for _, a := range as {
		if a.AssignedWriterID != "" {
			busy[a.AssignedWriterID] = true
		}
	}

	var writers, free []academia.Worker
	for _, w := range ws {
		if w.Type != academia.TypeGrantWriter {
			continue
		}
		writers = append(writers, w)
		if !busy[w.ID] {
			free = append(free, w)
		}
	}

	var (
		writerID string
		workTime int
		bonus    float64
	)
	switch {
	case len(writers) == 0:
		workTime = e.Balance.NoWriterWorkTime
	case len(free) == 0:
		return grant.Active{}, ErrWritersBusy
	default:
		w := free[0]
		writerID = w.ID
		workTime = max(10, 30-w.Skill*2)
		bonus = float64(w.Skill) * 2
	}

	o, ok, err := e.Grants.TakeOpportunity(ctx, opportunityID)
	if err != nil {
		return grant.Active{}, err
	}
	if !ok {
		return grant.Active{}, fmt.Errorf("opportunity %q: %w", opportunityID, ErrInvalidReference)
	}

	rate := min(o.Agency.SuccessRate+bonus, 95)
	a := grant.Claim(o, workTime, rate, writerID)
	if err := e.Grants.AddActive(ctx, a); err != nil {
		return grant.Active{}, err
	}
	e.note(feed.KindGrantApplied, "application submitted to %s (%.0f%% over %d ticks)",
		a.Agency.Name, a.SuccessRate, a.TotalTime)
	return a, nil
}

// ResolveCrisis applies the pending crisis effect exactly once. Every
// response carries the identical effect; the index only picks the
// flavor line recorded in the feed.
func (e *Engine) ResolveCrisis(ctx context.Context, responseIndex int) error {
	_ = ctx
	if e.pending == nil {
		return ErrNoPendingCrisis
	}
	ev := e.pending.Event
	if responseIndex < 0 || responseIndex >= len(ev.Responses) {
		responseIndex = 0
	}

	e.Ledger.ApplyDelta(ev.Effect.Funding, ev.Effect.Research)
	e.pending = nil
	e.note(feed.KindCrisisResolved, "%s: chose to %q", ev.Title, ev.Responses[responseIndex])
	return nil
}

// UpgradeResearch spends research points to advance a branch one
// level, counting a discovery and unlocking any gated equipment.
func (e *Engine) UpgradeResearch(ctx context.Context, branch Branch) (ResearchState, error) {
	_ = ctx
	st, ok := e.research[branch]
	if !ok {
		return ResearchState{}, fmt.Errorf("research branch %q: %w", branch, ErrInvalidReference)
	}
	cost, ok := UpgradeCost(st.Level)
	if !ok {
		return st, ErrResearchMaxed
	}
	if err := e.Ledger.DebitResearch(cost); err != nil {
		return st, err
	}

	st.Level++
	st.Progress = 0
	e.research[branch] = st
	e.stats.DiscoveryCount++
	e.note(feed.KindDiscovery, "%s research reached level %d", branch, st.Level)

	if kind, ok := researchUnlocks[branch][st.Level]; ok {
		e.unlocked[kind] = true
		e.note(feed.KindDiscovery, "new equipment unlocked: %s", kind)
	}
	return st, nil
}
