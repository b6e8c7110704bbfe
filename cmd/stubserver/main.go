package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"studywise-client/internal/bootstrap"
	"studywise-client/internal/config"
	"studywise-client/internal/server"
	"studywise-client/internal/tracer"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	cfg := config.Load()
	shutdownTracer := tracer.InitTracer(cfg.Trace)
	defer shutdownTracer(context.Background())

	// 1. Bootstrap the in-memory backend
	container := bootstrap.NewStubContainer(cfg, nil)
	defer container.Logger.Sync()

	// 2. Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down stub server...")
		_ = srv.Shutdown()
	}()

	// 3. Run
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
