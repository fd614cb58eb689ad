// Package feed keeps a bounded in-memory log of simulation events for
// the presentation layer to poll.
package feed

import (
	"sync"
	"time"
)

type Kind string

const (
	KindExperimentSuccess Kind = "experiment_success"
	KindExperimentFailure Kind = "experiment_failure"
	KindExhaustion        Kind = "scientist_exhausted"
	KindRecovery          Kind = "scientist_recovered"
	KindBurnoutWarning    Kind = "burnout_warning"
	KindAttrition         Kind = "worker_quit"
	KindOpportunityListed Kind = "grant_opportunity_listed"
	KindOpportunityLapsed Kind = "grant_opportunity_lapsed"
	KindGrantApplied      Kind = "grant_application_submitted"
	KindGrantAwarded      Kind = "grant_awarded"
	KindGrantRejected     Kind = "grant_rejected"
	KindCrisis            Kind = "crisis"
	KindCrisisResolved    Kind = "crisis_resolved"
	KindDiscovery         Kind = "research_discovery"
)

type Entry struct {
	ID      int       `json:"id"`
	Tick    int64     `json:"tick"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Log is a fixed-capacity ring: once full, appending evicts the oldest
// entry. IDs keep increasing across evictions.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int
	cap     int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 256
	}
	return &Log{nextID: 1, cap: capacity}
}

func (l *Log) Append(tick int64, kind Kind, message string, at time.Time) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{ID: l.nextID, Tick: tick, Kind: kind, Message: message, At: at}
	l.nextID++
	l.entries = append(l.entries, e)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
	return e
}

// Since returns entries with ID greater than afterID, oldest first.
func (l *Log) Since(afterID int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.ID > afterID {
			out = append(out, e)
		}
	}
	return out
}

func (l *Log) All() []Entry {
	return l.Since(0)
}
