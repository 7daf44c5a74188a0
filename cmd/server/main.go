package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agentdeck/agentdeck/internal/config"
	"github.com/agentdeck/agentdeck/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rt, err := NewRuntime(cfg)
	if err != nil {
		return err
	}

	rt.Logger.Info("starting agentdeck",
		"version", cfg.Version,
		"env", cfg.Env(),
	)

	if err := rt.Database.Start(rt.Lifecycle); err != nil {
		return err
	}

	domain := NewDomain(rt)
	routeSys := registerRoutes(rt, domain)
	handler := buildMiddleware(rt).Apply(routeSys.Build())

	srv := server.New(&cfg.Server, handler, rt.Logger, cfg.ShutdownTimeoutDuration())
	if err := srv.Start(rt.Lifecycle); err != nil {
		return err
	}

	rt.Lifecycle.WaitForStartup()
	rt.Logger.Info("service ready", "addr", cfg.Server.Addr())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	rt.Logger.Info("shutdown signal received")
	if err := rt.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	rt.Logger.Info("shutdown complete")
	return nil
}
