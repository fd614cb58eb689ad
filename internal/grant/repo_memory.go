package grant

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	opps    []Opportunity
	actives []Active
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Opportunities(ctx context.Context) ([]Opportunity, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Opportunity, len(r.opps))
	copy(out, r.opps)
	return out, nil
}

func (r *MemoryRepo) ReplaceOpportunities(ctx context.Context, os []Opportunity) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opps = make([]Opportunity, len(os))
	copy(r.opps, os)
	return nil
}

func (r *MemoryRepo) AddOpportunity(ctx context.Context, o Opportunity) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opps = append(r.opps, o)
	return nil
}

// TakeOpportunity removes and returns the listing in one step so a
// claim cannot race a concurrent expiry.
func (r *MemoryRepo) TakeOpportunity(ctx context.Context, id string) (Opportunity, bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.opps {
		if o.ID == id {
			r.opps = append(r.opps[:i], r.opps[i+1:]...)
			return o, true, nil
		}
	}
	return Opportunity{}, false, nil
}

func (r *MemoryRepo) Actives(ctx context.Context) ([]Active, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Active, len(r.actives))
	copy(out, r.actives)
	return out, nil
}

func (r *MemoryRepo) ReplaceActives(ctx context.Context, as []Active) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actives = make([]Active, len(as))
	copy(r.actives, as)
	return nil
}

func (r *MemoryRepo) AddActive(ctx context.Context, a Active) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actives = append(r.actives, a)
	return nil
}
