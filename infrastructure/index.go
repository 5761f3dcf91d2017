package infrastructure

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"kyc.gateman.io/infrastructure/env"
	startup "kyc.gateman.io/infrastructure/startUp"
)

type serverInterface interface {
	Start(ctx context.Context) error
}

// StartServer runs the HTTP server and, when configured, the queue worker
// until SIGINT or SIGTERM.
func StartServer(cfg *env.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := startup.StartServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer startup.CleanUpServices(services)

	var server serverInterface = &ginServer{cfg: cfg, services: services}
	return server.Start(ctx)
}
