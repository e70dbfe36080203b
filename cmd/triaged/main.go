package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crimson-sun/triage/internal/config"
	"github.com/crimson-sun/triage/internal/engine"
	"github.com/crimson-sun/triage/internal/logging"
	"github.com/crimson-sun/triage/internal/store"
	"github.com/crimson-sun/triage/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	// Train eagerly so a degraded model shows up in the startup logs rather
	// than on the first patient request.
	eng := engine.New(engine.Config{
		LexiconPath:         cfg.Engine.LexiconPath,
		MaxFeatures:         cfg.Engine.MaxFeatures,
		ConfidenceThreshold: cfg.Engine.ConfidenceThreshold,
		SmoothingAlpha:      cfg.Engine.SmoothingAlpha,
	})
	if state := eng.Init(); state != engine.StateReady {
		slog.Warn("triage model unavailable; assessments will return Unknown", "state", state.String())
	}

	st, err := store.Open(cfg.Store.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: rest.NewRouter(eng, st),
	}

	// Set up graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	go func() {
		slog.Info("triaged: listening", "addr", cfg.Server.Addr, "model", eng.State().String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("triaged: shutdown", "error", err)
	}
}
