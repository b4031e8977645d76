package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	"github.com/KirkDiggler/rpg-content-admin/internal/config"
	"github.com/KirkDiggler/rpg-content-admin/internal/logging"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
	"github.com/KirkDiggler/rpg-content-admin/internal/services"
)

// application is everything a command needs once configuration has loaded
type application struct {
	logger   *zap.Logger
	client   content.Client
	provider *services.Provider
	redis    *redis.Client
}

var app *application

// loadApp builds the application on first use so commands like slug run without configuration
func loadApp() (*application, error) {
	if app != nil {
		return app, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	client, err := content.New(&content.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Logger:  logger,
		HttpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	})
	if err != nil {
		return nil, err
	}

	a := &application{logger: logger, client: client}
	providerConfig := &services.ProviderConfig{
		ContentClient: client,
		Logger:        logger,
	}
	if cfg.Redis.URL != "" {
		a.redis = connectRedis(logger, cfg.Redis.URL)
		if a.redis != nil {
			providerConfig.DraftRepository = drafts.NewRedisRepository(&drafts.RedisRepoConfig{
				Client: a.redis,
				TTL:    cfg.Redis.DraftTTL,
			})
		}
	}
	a.provider = services.NewProvider(providerConfig)

	app = a
	return app, nil
}

// connectRedis returns nil when Redis is unusable so drafts fall back to memory
func connectRedis(logger *zap.Logger, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("invalid REDIS_URL, keeping drafts in memory", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, keeping drafts in memory", zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Debug("using redis for drafts", zap.String("addr", opts.Addr))
	return client
}

func closeApp() error {
	if app == nil {
		return nil
	}
	defer func() { app = nil }()

	_ = app.logger.Sync()
	if app.redis != nil {
		return app.redis.Close()
	}
	return nil
}

func defaultOwner() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "cli"
}
