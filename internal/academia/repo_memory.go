package academia

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu sync.RWMutex
	m  map[string]Worker
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[string]Worker{}}
}

func (r *MemoryRepo) Seed(ctx context.Context, ws []Worker) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]Worker, len(ws))
	for _, w := range ws {
		r.m[w.ID] = w
	}
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Worker, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Worker, 0, len(r.m))
	for _, w := range r.m {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Worker, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.m[id]
	return w, ok, nil
}

func (r *MemoryRepo) Add(ctx context.Context, w Worker) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[w.ID] = w
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, w Worker) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[w.ID] = w
	return nil
}

func (r *MemoryRepo) UpdateMany(ctx context.Context, ws []Worker) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range ws {
		r.m[w.ID] = w
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
