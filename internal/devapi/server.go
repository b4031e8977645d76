// Package devapi is an in-memory stand-in for the admin content API, used for local
// development and end-to-end tests of the client and services.
package devapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/taxonomy"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	"github.com/KirkDiggler/rpg-content-admin/internal/logging"
	"github.com/KirkDiggler/rpg-content-admin/internal/uuid"
)

// Config holds configuration for the dev server
type Config struct {
	Token         string         // Optional, requests must carry it as a bearer token when set
	Logger        *zap.Logger    // Optional
	UUIDGenerator uuid.Generator // Optional
}

// Server holds the in-memory content store behind the HTTP routes
type Server struct {
	token         string
	logger        *zap.Logger
	uuidGenerator uuid.Generator

	mu            sync.RWMutex
	species       map[string]*content.Species // by slug
	traits        map[string]*trait.Trait
	modifierTypes []taxonomy.ModifierType
	incumbencies  map[string]*incumbency.Incumbency
}

// New creates an empty dev server
func New(cfg *Config) *Server {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &Server{
		token:         cfg.Token,
		logger:        logging.OrNop(cfg.Logger).Named("devapi"),
		uuidGenerator: cfg.UUIDGenerator,
		species:       make(map[string]*content.Species),
		traits:        make(map[string]*trait.Trait),
		modifierTypes: []taxonomy.ModifierType{},
		incumbencies:  make(map[string]*incumbency.Incumbency),
	}
	if s.uuidGenerator == nil {
		s.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return s
}

// SeedSpecies stores species records, replacing any with the same slug
func (s *Server) SeedSpecies(species ...content.Species) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sp := range species {
		if sp.ID == "" {
			sp.ID = s.uuidGenerator.New()
		}
		sp.Traits = append([]content.SpeciesTraitRef{}, sp.Traits...)
		s.species[sp.Slug] = &sp
	}
}

// SeedTraits stores traits as given
func (s *Server) SeedTraits(traits ...trait.Trait) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range traits {
		if t.ID == "" {
			t.ID = s.uuidGenerator.New()
		}
		s.traits[t.ID] = t.Clone()
	}
}

// SeedModifierTypes replaces the modifier vocabulary
func (s *Server) SeedModifierTypes(types ...taxonomy.ModifierType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.modifierTypes = append([]taxonomy.ModifierType{}, types...)
}

// SeedIncumbencies stores incumbency versions as given
func (s *Server) SeedIncumbencies(records ...incumbency.Incumbency) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if r.ID == "" {
			r.ID = s.uuidGenerator.New()
		}
		r.Key = r.ResolvedKey()
		s.incumbencies[r.ID] = r.Clone()
	}
}

// Router returns a gin engine with recovery, request logging and auth applied
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	s.RegisterRoutes(router)
	return router
}

// RegisterRoutes mounts the admin and incumbency routes
func (s *Server) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/admin", s.requireToken())
	admin.GET("/species/slug/:slug", s.handleGetSpecies)
	admin.GET("/trait/by-ids", s.handleListTraitsByIDs)
	admin.POST("/trait", s.handleCreateTrait)
	admin.PUT("/trait/:id", s.handleUpdateTrait)
	admin.DELETE("/trait/:id", s.handleDeleteTrait)
	admin.GET("/trait-modifier", s.handleListModifierTypes)

	inc := router.Group("/api/incumbency", s.requireToken())
	inc.GET("", s.handleListIncumbencies)
	inc.POST("", s.handleCreateIncumbency)
	inc.GET("/key/:key", s.handleListIncumbencyVersions)
	inc.GET("/:id", s.handleGetIncumbency)
	inc.PATCH("/:id", s.handleUpdateIncumbency)
	inc.DELETE("/:id", s.handleDeleteIncumbency)
}

func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != s.token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func writeError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}

// Seed is the initial content a dev server starts with
type Seed struct {
	Species       []content.Species       `json:"species"`
	Traits        []trait.Trait           `json:"traits"`
	ModifierTypes []taxonomy.ModifierType `json:"modifier_types"`
	Incumbencies  []incumbency.Incumbency `json:"incumbencies"`
}

// Apply stores everything in seed
func (s *Server) Apply(seed *Seed) {
	if seed == nil {
		return
	}
	s.SeedSpecies(seed.Species...)
	s.SeedTraits(seed.Traits...)
	if len(seed.ModifierTypes) > 0 {
		s.SeedModifierTypes(seed.ModifierTypes...)
	}
	s.SeedIncumbencies(seed.Incumbencies...)

	s.logger.Info("seed applied",
		zap.Int("species", len(seed.Species)),
		zap.Int("traits", len(seed.Traits)),
		zap.Int("modifier_types", len(seed.ModifierTypes)),
		zap.Int("incumbencies", len(seed.Incumbencies)))
}
