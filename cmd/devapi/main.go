// Command devapi serves an in-memory content API for local authoring.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-content-admin/internal/config"
	"github.com/KirkDiggler/rpg-content-admin/internal/devapi"
	"github.com/KirkDiggler/rpg-content-admin/internal/logging"
)

func main() {
	seedPath := flag.String("seed", "", "JSON file with species, traits, modifier types and incumbencies to preload")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadDevAPI()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	server := devapi.New(&devapi.Config{
		Token:  cfg.DevAPI.Token,
		Logger: logger,
	})

	if *seedPath != "" {
		seed, err := loadSeed(*seedPath)
		if err != nil {
			logger.Fatal("Failed to load seed", zap.String("path", *seedPath), zap.Error(err))
		}
		server.Apply(seed)
		logger.Info("Loaded seed",
			zap.Int("species", len(seed.Species)),
			zap.Int("traits", len(seed.Traits)),
			zap.Int("modifier_types", len(seed.ModifierTypes)),
			zap.Int("incumbencies", len(seed.Incumbencies)))
	}

	httpServer := &http.Server{
		Addr:              cfg.DevAPI.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Content API listening", zap.String("addr", cfg.DevAPI.Addr), zap.Bool("auth", cfg.DevAPI.Token != ""))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func loadSeed(path string) (*devapi.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	seed := &devapi.Seed{}
	if err := json.Unmarshal(data, seed); err != nil {
		return nil, err
	}
	return seed, nil
}
