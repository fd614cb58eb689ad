package game

import (
	"labtycoon/internal/crisis"
	"labtycoon/internal/feed"
)

// PendingCrisis is the crisis currently awaiting a response. It is
// transient: never persisted, dropped on restart.
type PendingCrisis struct {
	Event       crisis.Event `json:"event"`
	TriggeredAt int64        `json:"triggeredAtTick"`
}

// PendingCrisisView returns a copy of the open crisis, or nil.
func (e *Engine) PendingCrisisView() *PendingCrisis {
	if e.pending == nil {
		return nil
	}
	c := *e.pending
	return &c
}

// maybeTriggerCrisis gates on a coarse 45-90 tick window and then a
// secondary chance roll. Only one crisis can be pending at a time; a
// window that elapses while one is open is simply lost.
func (e *Engine) maybeTriggerCrisis(res *TickResult) {
	if e.crisisTimer > 0 {
		e.crisisTimer--
		return
	}
	e.crisisTimer = e.rollCrisisWindow()

	if e.pending != nil {
		return
	}
	if e.RNG.Float64() >= e.Balance.CrisisChance {
		return
	}

	catalog := crisis.Catalog()
	ev := catalog[e.RNG.Intn(len(catalog))]
	e.pending = &PendingCrisis{Event: ev, TriggeredAt: e.tick}
	res.CrisisTriggered = true
	e.note(feed.KindCrisis, "CRISIS: %s. %s", ev.Title, ev.Message)
}

func (e *Engine) rollCrisisWindow() int {
	lo, hi := e.Balance.CrisisWindowMinTicks, e.Balance.CrisisWindowMaxTicks
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return lo + e.RNG.Intn(hi-lo+1)
}
