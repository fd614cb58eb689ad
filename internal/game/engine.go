// Package game is the simulation core: a tick-driven engine advancing
// experiments, the academia workforce, the grant treadmill, and random
// crises against a shared economy.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"labtycoon/internal/academia"
	"labtycoon/internal/config"
	"labtycoon/internal/econ"
	"labtycoon/internal/equipment"
	"labtycoon/internal/feed"
	"labtycoon/internal/grant"
	"labtycoon/internal/scientist"
)

// Stats are the lab's lifetime counters.
type Stats struct {
	TotalExperiments      int `json:"totalExperiments"`
	SuccessfulExperiments int `json:"successfulExperiments"`
	DiscoveryCount        int `json:"discoveryCount"`
	Burnouts              int `json:"burnouts"`
	DreamsDestroyed       int `json:"dreamsDestroyed"`
}

// Engine owns the whole simulation state. It is not safe for
// concurrent use: all ticks and commands must come from one goroutine,
// which is what Runner provides.
type Engine struct {
	Scientists scientist.Repository
	Equipment  equipment.Repository
	Workers    academia.Repository
	Grants     grant.Repository
	Ledger     *econ.Ledger
	Feed       *feed.Log
	Clock      Clock
	Balance    config.Balance
	RNG        *rand.Rand
	Log        *slog.Logger

	tick        int64
	research    map[Branch]ResearchState
	unlocked    map[string]bool
	stats       Stats
	pending     *PendingCrisis
	crisisTimer int
}

type Params struct {
	Scientists scientist.Repository
	Equipment  equipment.Repository
	Workers    academia.Repository
	Grants     grant.Repository
	Feed       *feed.Log
	Clock      Clock
	Balance    config.Balance
	RNG        *rand.Rand
	Logger     *slog.Logger
}

// New builds an engine in the fresh-lab state: starting funding, zero
// research, base equipment unlocked, empty rosters.
func New(p Params) *Engine {
	if p.Scientists == nil {
		p.Scientists = scientist.NewMemoryRepo()
	}
	if p.Equipment == nil {
		p.Equipment = equipment.NewMemoryRepo()
	}
	if p.Workers == nil {
		p.Workers = academia.NewMemoryRepo()
	}
	if p.Grants == nil {
		p.Grants = grant.NewMemoryRepo()
	}
	if p.Feed == nil {
		p.Feed = feed.NewLog(512)
	}
	if p.Clock == nil {
		p.Clock = RealClock{}
	}
	if p.Balance == (config.Balance{}) {
		p.Balance = config.DefaultBalance()
	}
	if p.RNG == nil {
		p.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}

	e := &Engine{
		Scientists: p.Scientists,
		Equipment:  p.Equipment,
		Workers:    p.Workers,
		Grants:     p.Grants,
		Ledger:     econ.NewLedger(p.Balance.StartingFunding, 0),
		Feed:       p.Feed,
		Clock:      p.Clock,
		Balance:    p.Balance,
		RNG:        p.RNG,
		Log:        p.Logger,
		research:   freshResearch(),
		unlocked:   map[string]bool{},
	}
	for _, k := range equipment.StartingUnlocks() {
		e.unlocked[k] = true
	}
	e.crisisTimer = e.rollCrisisWindow()
	return e
}

// BootstrapFresh seeds the opening grant listings for a brand-new lab.
// Agencies are drawn without replacement, so the lab always opens with
// the full requested count, each from a different agency, capped by
// how many agencies exist.
func (e *Engine) BootstrapFresh(ctx context.Context, opportunities int) error {
	agencies := append([]grant.Agency(nil), grant.Agencies()...)
	e.RNG.Shuffle(len(agencies), func(i, j int) {
		agencies[i], agencies[j] = agencies[j], agencies[i]
	})
	if opportunities > len(agencies) {
		opportunities = len(agencies)
	}
	for _, a := range agencies[:opportunities] {
		o := grant.NewOpportunity(e.RNG, a, e.Balance.OpportunityMinDuration, e.Balance.OpportunityMaxDuration)
		if err := e.Grants.AddOpportunity(ctx, o); err != nil {
			return fmt.Errorf("seed opportunity: %w", err)
		}
	}
	return nil
}

func (e *Engine) TickCount() int64 {
	return e.tick
}

func (e *Engine) StatsView() Stats {
	return e.stats
}

// Unlocked reports whether an equipment kind can be purchased.
func (e *Engine) Unlocked(kind string) bool {
	return e.unlocked[kind]
}

func (e *Engine) Research() map[Branch]ResearchState {
	out := make(map[Branch]ResearchState, len(e.research))
	for b, st := range e.research {
		out[b] = st
	}
	return out
}

// note appends a feed entry stamped with the current tick.
func (e *Engine) note(kind feed.Kind, format string, args ...any) {
	e.Feed.Append(e.tick, kind, fmt.Sprintf(format, args...), e.Clock.Now())
}
