package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"newsboard-api/config"
	"newsboard-api/db"
	"newsboard-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Get()

	// Initialize Redis
	if err := db.InitRedis(cfg.RedisURL); err != nil {
		log.Fatalf("Error initializing Redis: %v", err)
	}

	// Migrate the database
	migrateCfg := db.MigrateConfig{
		DBURL: cfg.DatabaseURL,
	}

	if err := db.Migrate(migrateCfg); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Set up routes and middlewares
	handler := routes.SetupRoutes(cfg)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 7500,
		IdleTimeout:    cfg.IdleTimeout,
	}

	// Use a wait group to manage graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()
	log.Printf("Server started on :%s", cfg.Port)

	// Wait for interrupt signal to gracefully shut down the server
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}
