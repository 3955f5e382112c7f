package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wenjunnutter/hailort/internal/infrastructure/config"
	"github.com/wenjunnutter/hailort/internal/server"
)

func main() {
	grpcAddr := flag.String("grpc", "", "Broker gRPC listen address")
	adminPort := flag.String("admin-port", "", "Admin HTTP port")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *grpcAddr != "" {
		cfg.GRPC.Address = *grpcAddr
	}
	if *adminPort != "" {
		cfg.Admin.Port = *adminPort
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create broker: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Broker error: %v", err)
	}
}
