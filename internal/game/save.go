package game

import (
	"context"
	"sort"
	"time"

	"labtycoon/internal/academia"
	"labtycoon/internal/equipment"
	"labtycoon/internal/grant"
	"labtycoon/internal/scientist"
)

// SaveState is the full simulation document: one save is one complete
// overwrite, never a partial merge. The pending crisis is deliberately
// absent: crises do not survive a restart.
type SaveState struct {
	Tick           int64                     `json:"tick"`
	Funding        float64                   `json:"funding"`
	ResearchPoints float64                   `json:"researchPoints"`
	Scientists     []scientist.Scientist     `json:"scientists"`
	Equipment      []equipment.Equipment     `json:"equipment"`
	Academia       []academia.Worker         `json:"academia"`
	Opportunities  []grant.Opportunity       `json:"grantOpportunities"`
	ActiveGrants   []grant.Active            `json:"activeGrants"`
	Research       map[Branch]ResearchState  `json:"research"`
	Unlocked       []string                  `json:"unlockedEquipment"`
	Stats          Stats                     `json:"stats"`
	CrisisTimer    int                       `json:"crisisTimer"`
	SavedAt        time.Time                 `json:"savedAt"`
}

// SaveStore persists full-state documents under a fixed key.
type SaveStore interface {
	Save(ctx context.Context, st SaveState) error
	Load(ctx context.Context) (SaveState, bool, error)
}

// CaptureState assembles the current save document.
func (e *Engine) CaptureState(ctx context.Context) (SaveState, error) {
	scis, err := e.Scientists.List(ctx)
	if err != nil {
		return SaveState{}, err
	}
	eqs, err := e.Equipment.List(ctx)
	if err != nil {
		return SaveState{}, err
	}
	ws, err := e.Workers.List(ctx)
	if err != nil {
		return SaveState{}, err
	}
	opps, err := e.Grants.Opportunities(ctx)
	if err != nil {
		return SaveState{}, err
	}
	actives, err := e.Grants.Actives(ctx)
	if err != nil {
		return SaveState{}, err
	}

	funding, research := e.Ledger.Balances()

	unlocked := make([]string, 0, len(e.unlocked))
	for k := range e.unlocked {
		unlocked = append(unlocked, k)
	}
	sort.Strings(unlocked)

	return SaveState{
		Tick:           e.tick,
		Funding:        funding,
		ResearchPoints: research,
		Scientists:     scis,
		Equipment:      eqs,
		Academia:       ws,
		Opportunities:  opps,
		ActiveGrants:   actives,
		Research:       e.Research(),
		Unlocked:       unlocked,
		Stats:          e.stats,
		CrisisTimer:    e.crisisTimer,
		SavedAt:        e.Clock.Now(),
	}, nil
}

// Restore replaces the whole simulation with a loaded document. All
// defaulting for older or sparse snapshots happens here and nowhere
// else: missing rosters become empty, missing research branches start
// at zero, and the base equipment unlocks are always present.
func (e *Engine) Restore(ctx context.Context, st SaveState) error {
	if st.Scientists == nil {
		st.Scientists = []scientist.Scientist{}
	}
	if st.Equipment == nil {
		st.Equipment = []equipment.Equipment{}
	}
	if st.Academia == nil {
		st.Academia = []academia.Worker{}
	}
	if st.Opportunities == nil {
		st.Opportunities = []grant.Opportunity{}
	}
	if st.ActiveGrants == nil {
		st.ActiveGrants = []grant.Active{}
	}

	if err := e.Scientists.Seed(ctx, st.Scientists); err != nil {
		return err
	}
	if err := e.Equipment.Seed(ctx, st.Equipment); err != nil {
		return err
	}
	if err := e.Workers.Seed(ctx, st.Academia); err != nil {
		return err
	}
	if err := e.Grants.ReplaceOpportunities(ctx, st.Opportunities); err != nil {
		return err
	}
	if err := e.Grants.ReplaceActives(ctx, st.ActiveGrants); err != nil {
		return err
	}

	e.Ledger.Reset(st.Funding, st.ResearchPoints)
	e.tick = st.Tick
	e.stats = st.Stats
	e.pending = nil

	e.research = freshResearch()
	for b, rs := range st.Research {
		e.research[b] = rs
	}

	e.unlocked = map[string]bool{}
	for _, k := range equipment.StartingUnlocks() {
		e.unlocked[k] = true
	}
	for _, k := range st.Unlocked {
		e.unlocked[k] = true
	}

	e.crisisTimer = st.CrisisTimer
	if e.crisisTimer < 0 {
		e.crisisTimer = e.rollCrisisWindow()
	}
	return nil
}

// Snapshot is the read-only view handed to the presentation layer:
// the save document plus the transient crisis.
type Snapshot struct {
	SaveState
	PendingCrisis *PendingCrisis `json:"pendingCrisis,omitempty"`
}

func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	st, err := e.CaptureState(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{SaveState: st, PendingCrisis: e.PendingCrisisView()}, nil
}
