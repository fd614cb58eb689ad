package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"labtycoon/internal/academia"
	"labtycoon/internal/config"
	"labtycoon/internal/equipment"
	"labtycoon/internal/feed"
	"labtycoon/internal/game"
	"labtycoon/internal/grant"
	"labtycoon/internal/httpmw"
	"labtycoon/internal/ops"
	"labtycoon/internal/persistence"
	"labtycoon/internal/scientist"
	"labtycoon/internal/server"
)

const openingOpportunities = 3

func main() {
	var (
		configPath = flag.String("config", "", "path to yaml config (optional)")
		addr       = flag.String("addr", "", "listen address, overrides config")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(log)

	if err := run(*configPath, *addr, log); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(configPath, addrOverride string, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Addr = addrOverride
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}
	store, err := persistence.Open(filepath.Join(cfg.DataDir, ops.SaveFileName))
	if err != nil {
		return err
	}
	defer store.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fl := feed.NewLog(cfg.FeedCapacity)
	engine := game.New(game.Params{
		Scientists: scientist.NewMemoryRepo(),
		Equipment:  equipment.NewMemoryRepo(),
		Workers:    academia.NewMemoryRepo(),
		Grants:     grant.NewMemoryRepo(),
		Feed:       fl,
		Clock:      game.RealClock{},
		Balance:    cfg.Balance,
		RNG:        rand.New(rand.NewSource(seed)),
		Logger:     log,
	})

	st, found, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if found {
		if err := engine.Restore(ctx, st); err != nil {
			return err
		}
		log.Info("resumed lab", "tick", st.Tick, "funding", st.Funding, "savedAt", st.SavedAt)
	} else {
		if err := engine.BootstrapFresh(ctx, openingOpportunities); err != nil {
			return err
		}
		log.Info("fresh lab", "funding", cfg.Balance.StartingFunding)
	}

	runner := game.NewRunner(engine, store, cfg.TickInterval, cfg.AutosaveTicks, log)
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		runner.Run(ctx)
	}()

	hub := server.NewHub(log)
	go hub.Run(ctx)
	notifications, unsubscribe := runner.Subscribe(64)
	defer unsubscribe()
	go hub.Pump(ctx, notifications)

	app := &server.App{
		Engine:  engine,
		Runner:  runner,
		Feed:    fl,
		Hub:     hub,
		Store:   store,
		DataDir: cfg.DataDir,
		Log:     log,
	}

	handler := httpmw.Chain(server.NewMux(app),
		httpmw.WithRequestID,
		httpmw.WithRecover(log),
		httpmw.WithAccessLog(log),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("labtycoon listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", "err", err)
	}

	// Let the runner write its final save before the store closes.
	stop()
	<-runnerDone
	return nil
}
