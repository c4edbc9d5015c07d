package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"weather-lookup/config"
	"weather-lookup/di"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		log.Printf("[MAIN] Server failed: %v", err)
		os.Exit(1)
	}
}

// run serves until ctx ends or the server fails. Every resource it creates is
// released before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	container := di.NewContainer(ctx, cfg)
	defer container.LookupSession.Close()

	// The default city loads in the background; clients see loading=true until it lands.
	go func() {
		state := container.LookupSession.Start(ctx)
		log.Printf("[MAIN] Default city loaded: city=%q error=%q", state.City, state.Error)
	}()

	log.Println("[MAIN] starting server!")
	return container.WeatherLookupHttpServer.Run(ctx)
}
