package main

import (
	"context"
	"errors"
	"fmt"
	"messageboard/internal/config"
	"messageboard/internal/database"
	"messageboard/internal/handlers"
	"messageboard/internal/logging"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	fmt.Println("Reading config...")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Setting up logger...")
	sugar, closeLog, err := logging.Setup(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	db, dialect, err := database.Open(cfg, sugar)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = database.Initialize(ctx, db, dialect, cfg.DbInitAttempts, cfg.DbInitDelay, sugar)
	if err != nil {
		sugar.Fatal(err)
	}

	h := handlers.New(database.NewStore(db), sugar)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Address, cfg.Port),
		Handler:           handlers.NewRouter(h, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infof("Server is running on http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatal(err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown error", "error", err)
	}
}
