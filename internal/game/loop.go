package game

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Notification is published to subscribers after every tick and every
// applied command, in that order relative to the mutation.
type Notification struct {
	Reason   string   `json:"reason"` // "tick" or "command"
	Snapshot Snapshot `json:"snapshot"`
}

type command struct {
	fn   func(ctx context.Context) error
	done chan error
}

// Runner is the single goroutine that owns the engine. It fires one
// Tick per interval and interleaves queued commands strictly between
// ticks, so the engine never sees concurrent access. Saves are
// captured synchronously but written in the background; a newer save
// simply supersedes an in-flight one.
type Runner struct {
	engine        *Engine
	store         SaveStore
	log           *slog.Logger
	interval      time.Duration
	autosaveEvery int64

	cmds chan command

	mu   sync.Mutex
	subs map[chan Notification]struct{}
}

func NewRunner(e *Engine, store SaveStore, interval time.Duration, autosaveEvery int, log *slog.Logger) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		engine:        e,
		store:         store,
		log:           log,
		interval:      interval,
		autosaveEvery: int64(autosaveEvery),
		cmds:          make(chan command, 64),
		subs:          map[chan Notification]struct{}{},
	}
}

// Run blocks until ctx is cancelled, then writes a final save.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("simulation running", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.finalSave()
			r.log.Info("simulation stopped", "tick", r.engine.TickCount())
			return
		case <-ticker.C:
			res := r.engine.Tick(ctx)
			r.publish(ctx, "tick")
			if r.store != nil && r.autosaveEvery > 0 && res.Tick%r.autosaveEvery == 0 {
				r.saveAsync(ctx)
			}
		case c := <-r.cmds:
			c.done <- c.fn(ctx)
			r.publish(ctx, "command")
		}
	}
}

// Do runs fn on the simulation goroutine, between ticks, and returns
// its error. This is the only safe way to touch the engine while the
// runner is live.
func (r *Runner) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	c := command{fn: fn, done: make(chan error, 1)}
	select {
	case r.cmds <- c:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-c.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns a notification channel and its cancel func. Slow
// subscribers miss notifications rather than stalling the simulation.
func (r *Runner) Subscribe(buffer int) (<-chan Notification, func()) {
	if buffer <= 0 {
		buffer = 8
	}
	ch := make(chan Notification, buffer)
	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		if _, ok := r.subs[ch]; ok {
			delete(r.subs, ch)
			close(ch)
		}
		r.mu.Unlock()
	}
	return ch, cancel
}

func (r *Runner) publish(ctx context.Context, reason string) {
	snap, err := r.engine.Snapshot(ctx)
	if err != nil {
		r.log.Error("snapshot failed", "err", err)
		return
	}
	n := Notification{Reason: reason, Snapshot: snap}

	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// saveAsync captures state on the loop goroutine, then writes it in
// the background so persistence never blocks a tick.
func (r *Runner) saveAsync(ctx context.Context) {
	st, err := r.engine.CaptureState(ctx)
	if err != nil {
		r.log.Error("capture for autosave failed", "err", err)
		return
	}
	go func() {
		if err := r.store.Save(context.Background(), st); err != nil {
			r.log.Error("autosave failed", "err", err)
		}
	}()
}

func (r *Runner) finalSave() {
	if r.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := r.engine.CaptureState(ctx)
	if err != nil {
		r.log.Error("capture for final save failed", "err", err)
		return
	}
	if err := r.store.Save(ctx, st); err != nil {
		r.log.Error("final save failed", "err", err)
	}
}
