package scientist

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu sync.RWMutex
	m  map[string]Scientist
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[string]Scientist{}}
}

func (r *MemoryRepo) Seed(ctx context.Context, ss []Scientist) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]Scientist, len(ss))
	for _, s := range ss {
		r.m[s.ID] = s
	}
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Scientist, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scientist, 0, len(r.m))
	for _, s := range r.m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Scientist, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.m[id]
	return s, ok, nil
}

func (r *MemoryRepo) Add(ctx context.Context, s Scientist) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[s.ID] = s
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, s Scientist) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[s.ID] = s
	return nil
}

func (r *MemoryRepo) UpdateMany(ctx context.Context, ss []Scientist) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range ss {
		r.m[s.ID] = s
	}
	return nil
}

func (r *MemoryRepo) Remove(ctx context.Context, id string) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.m[id]
	delete(r.m, id)
	return ok, nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m), nil
}
