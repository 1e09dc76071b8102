// Command stubserver runs the in-memory job-board API for local development
// of the client.
package main

import (
	"log"
	"net/http"
	"time"

	"JobLane-client/internal/config"
	"JobLane-client/internal/stubserver"
)

func main() {
	cfg := config.Load()

	stub := stubserver.New(cfg)

	server := &http.Server{
		Addr:         cfg.StubAddr,
		Handler:      stub.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("stub API listening on %s (seed login: %s / %s)",
		cfg.StubAddr, stubserver.SeedAdminEmail, stubserver.SeedPassword)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Stub server failed: %s", err)
	}
}
