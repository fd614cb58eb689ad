package equipment

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu sync.RWMutex
	m  map[string]Equipment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[string]Equipment{}}
}

func (r *MemoryRepo) Seed(ctx context.Context, es []Equipment) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]Equipment, len(es))
	for _, e := range es {
		r.m[e.ID] = e
	}
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Equipment, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Equipment, 0, len(r.m))
	for _, e := range r.m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotIndex < out[j].SlotIndex })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Equipment, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.m[id]
	return e, ok, nil
}

func (r *MemoryRepo) Add(ctx context.Context, e Equipment) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[e.ID] = e
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, e Equipment) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[e.ID] = e
	return nil
}

func (r *MemoryRepo) UpdateMany(ctx context.Context, es []Equipment) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range es {
		r.m[e.ID] = e
	}
	return nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m), nil
}
