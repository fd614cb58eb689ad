// Package econ holds the lab's shared economy: funding and research
// points. All affordability checks happen inside the ledger at write
// time, so callers never act on a stale read.
package econ

import (
	"errors"
	"sync"
)

var (
	ErrInsufficientFunds    = errors.New("insufficient funding")
	ErrInsufficientResearch = errors.New("insufficient research points")
)

type Ledger struct {
	mu       sync.RWMutex
	funding  float64
	research float64
}

func NewLedger(funding, research float64) *Ledger {
	return &Ledger{funding: funding, research: research}
}

// Balances returns the current funding and research-point totals.
func (l *Ledger) Balances() (funding, research float64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.funding, l.research
}

func (l *Ledger) Funding() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.funding
}

func (l *Ledger) Research() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.research
}

func (l *Ledger) CreditFunding(amount float64) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.funding += amount
}

func (l *Ledger) CreditResearch(amount float64) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.research += amount
}

// DebitFunding withdraws amount, or rejects the whole debit if the
// balance would go negative. The ledger is unchanged on rejection.
func (l *Ledger) DebitFunding(amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > l.funding {
		return ErrInsufficientFunds
	}
	l.funding -= amount
	return nil
}

func (l *Ledger) DebitResearch(amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > l.research {
		return ErrInsufficientResearch
	}
	l.research -= amount
	return nil
}

// ApplyDelta adjusts both balances at once, clamping each at zero.
// Used for tick settlement and crisis effects, where the outcome is
// imposed on the lab rather than chosen by it.
func (l *Ledger) ApplyDelta(funding, research float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.funding = max(0, l.funding+funding)
	l.research = max(0, l.research+research)
}

// Reset overwrites both balances. Only the load path should call this.
func (l *Ledger) Reset(funding, research float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.funding = max(0, funding)
	l.research = max(0, research)
}
