// Package server exposes the simulation over HTTP: a JSON command and
// query surface plus a websocket stream of state snapshots.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"labtycoon/internal/econ"
	"labtycoon/internal/feed"
	"labtycoon/internal/game"
	"labtycoon/internal/ops"
	"labtycoon/internal/scientist"
)

// Snapshotter is the optional store capability the backup endpoint
// needs: a consistent on-disk copy that is safe to take while the
// store keeps serving writes.
type Snapshotter interface {
	SnapshotTo(ctx context.Context, path string) error
}

// App holds everything the handlers depend on. All engine access goes
// through the Runner so commands serialize with ticks.
type App struct {
	Engine  *game.Engine
	Runner  *game.Runner
	Feed    *feed.Log
	Hub     *Hub
	Store   game.SaveStore
	DataDir string
	Log     *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

// statusForError maps the engine's typed rejections onto HTTP codes:
// broke labs get 402, conflicting state 409, bad references 404.
func statusForError(err error) int {
	switch {
	case errors.Is(err, econ.ErrInsufficientFunds),
		errors.Is(err, econ.ErrInsufficientResearch):
		return http.StatusPaymentRequired
	case errors.Is(err, game.ErrCapacityExceeded),
		errors.Is(err, game.ErrSlotOccupied),
		errors.Is(err, game.ErrAlreadyAssigned),
		errors.Is(err, game.ErrEquipmentLocked),
		errors.Is(err, game.ErrWritersBusy),
		errors.Is(err, game.ErrResearchMaxed),
		errors.Is(err, game.ErrNoPendingCrisis):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidReference):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

// command wraps the Do round-trip shared by every mutating handler.
func (app *App) command(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) (any, error)) {
	var out any
	err := app.Runner.Do(r.Context(), func(ctx context.Context) error {
		v, err := fn(ctx)
		out = v
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = map[string]string{"status": "ok"}
	}
	writeJSON(w, http.StatusOK, out)
}

func NewMux(app *App) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"tick":   app.Engine.TickCount(),
		})
	})

	mux.HandleFunc("GET /api/state", func(w http.ResponseWriter, r *http.Request) {
		var snap game.Snapshot
		err := app.Runner.Do(r.Context(), func(ctx context.Context) error {
			s, err := app.Engine.Snapshot(ctx)
			snap = s
			return err
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	mux.HandleFunc("GET /api/feed", func(w http.ResponseWriter, r *http.Request) {
		since := 0
		if s := r.URL.Query().Get("since"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "since must be an integer"})
				return
			}
			since = n
		}
		writeJSON(w, http.StatusOK, app.Feed.Since(since))
	})

	mux.HandleFunc("GET /api/market/scientists", func(w http.ResponseWriter, r *http.Request) {
		count := 3
		if s := r.URL.Query().Get("count"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 10 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "count must be 1-10"})
				return
			}
			count = n
		}
		var cands []scientist.Candidate
		err := app.Runner.Do(r.Context(), func(ctx context.Context) error {
			cands = app.Engine.ScientistCandidates(count)
			return nil
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cands)
	})

	mux.HandleFunc("POST /api/cmd/buy-equipment", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Slot int    `json:"slot"`
			Kind string `json:"kind"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return app.Engine.BuyEquipment(ctx, body.Slot, body.Kind)
		})
	})

	mux.HandleFunc("POST /api/cmd/hire-scientist", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Candidate scientist.Candidate `json:"candidate"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if body.Candidate.Name == "" || body.Candidate.Cost <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "candidate is required"})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return app.Engine.HireScientist(ctx, body.Candidate)
		})
	})

	mux.HandleFunc("POST /api/cmd/fire-scientist", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return nil, app.Engine.FireScientist(ctx, body.ID)
		})
	})

	mux.HandleFunc("POST /api/cmd/hire-worker", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Type string `json:"type"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return app.Engine.HireAcademiaWorker(ctx, body.Type)
		})
	})

	mux.HandleFunc("POST /api/cmd/fire-worker", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return nil, app.Engine.FireAcademiaWorker(ctx, body.ID)
		})
	})

	mux.HandleFunc("POST /api/cmd/assign", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ScientistID string `json:"scientistId"`
			EquipmentID string `json:"equipmentId"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return nil, app.Engine.AssignScientist(ctx, body.ScientistID, body.EquipmentID)
		})
	})

	mux.HandleFunc("POST /api/cmd/unassign", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ScientistID string `json:"scientistId"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return nil, app.Engine.UnassignScientist(ctx, body.ScientistID)
		})
	})

	mux.HandleFunc("POST /api/cmd/apply-grant", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			OpportunityID string `json:"opportunityId"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return app.Engine.ApplyForGrant(ctx, body.OpportunityID)
		})
	})

	mux.HandleFunc("POST /api/cmd/resolve-crisis", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Response int `json:"response"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return nil, app.Engine.ResolveCrisis(ctx, body.Response)
		})
	})

	mux.HandleFunc("POST /api/cmd/upgrade-research", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Branch string `json:"branch"`
		}
		if err := decode(r, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			return app.Engine.UpgradeResearch(ctx, game.Branch(body.Branch))
		})
	})

	mux.HandleFunc("POST /api/admin/save", func(w http.ResponseWriter, r *http.Request) {
		if app.Store == nil {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "no save store configured"})
			return
		}
		app.command(w, r, func(ctx context.Context) (any, error) {
			st, err := app.Engine.CaptureState(ctx)
			if err != nil {
				return nil, err
			}
			if err := app.Store.Save(ctx, st); err != nil {
				return nil, err
			}
			return map[string]any{"status": "saved", "tick": st.Tick}, nil
		})
	})

	mux.HandleFunc("POST /api/admin/backup", func(w http.ResponseWriter, r *http.Request) {
		if app.DataDir == "" {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "no data directory configured"})
			return
		}
		snapStore, ok := app.Store.(Snapshotter)
		if !ok {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "save store cannot snapshot"})
			return
		}

		// Flush current state through the runner first, so the archive
		// carries the latest tick rather than the last autosave.
		var tick int64
		if err := app.Runner.Do(r.Context(), func(ctx context.Context) error {
			st, err := app.Engine.CaptureState(ctx)
			if err != nil {
				return err
			}
			tick = st.Tick
			return app.Store.Save(ctx, st)
		}); err != nil {
			writeError(w, err)
			return
		}

		stamp := time.Now().UTC().Format("20060102-150405")
		// Archives live next to the data dir, not inside it, so a
		// backup never tries to include itself.
		backupsDir := app.DataDir + "-backups"
		if err := os.MkdirAll(backupsDir, 0o755); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		snapshot := filepath.Join(backupsDir, "labtycoon-"+stamp+".db")
		archive := filepath.Join(backupsDir, "labtycoon-"+stamp+".tar.gz")

		// The snapshot is a committed-state copy, so an autosave still
		// in flight cannot tear it the way a raw file copy of a
		// WAL-mode database could.
		if err := snapStore.SnapshotTo(r.Context(), snapshot); err != nil {
			app.Log.Error("backup snapshot failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		defer os.Remove(snapshot)

		if err := ops.BackupLab(app.DataDir, snapshot, archive); err != nil {
			app.Log.Error("backup failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "archive": archive, "tick": tick})
	})

	if app.Hub != nil {
		mux.HandleFunc("GET /ws", app.Hub.ServeWS)
	}

	return mux
}
