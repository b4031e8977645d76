package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
	incumbencyService "github.com/KirkDiggler/rpg-content-admin/internal/services/incumbency"
	traitService "github.com/KirkDiggler/rpg-content-admin/internal/services/trait"
)

// Provider holds all service instances
type Provider struct {
	TraitService      traitService.Service
	IncumbencyService incumbencyService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ContentClient   content.Client
	DraftRepository drafts.Repository
	Logger          *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	draftRepo := cfg.DraftRepository
	if draftRepo == nil {
		draftRepo = drafts.NewInMemoryRepository()
	}

	return &Provider{
		TraitService: traitService.NewService(&traitService.ServiceConfig{
			Client: cfg.ContentClient,
			Drafts: draftRepo,
			Logger: cfg.Logger,
		}),
		IncumbencyService: incumbencyService.NewService(&incumbencyService.ServiceConfig{
			Client: cfg.ContentClient,
			Drafts: draftRepo,
			Logger: cfg.Logger,
		}),
	}
}
