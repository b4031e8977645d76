package devapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
)

func (s *Server) handleGetSpecies(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp, ok := s.species[c.Param("slug")]
	if !ok {
		writeError(c, http.StatusNotFound, "species not found", nil)
		return
	}

	out := *sp
	out.Traits = append([]content.SpeciesTraitRef{}, sp.Traits...)
	writeData(c, http.StatusOK, out)
}

// handleListTraitsByIDs returns the known traits in request order, skipping unknown ids
func (s *Server) handleListTraitsByIDs(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []trait.Trait{}
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if t, ok := s.traits[strings.TrimSpace(id)]; ok {
			out = append(out, *t.Clone())
		}
	}
	writeData(c, http.StatusOK, out)
}

func (s *Server) handleCreateTrait(c *gin.Context) {
	var t trait.Trait
	if err := c.ShouldBindJSON(&t); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if strings.TrimSpace(t.Name) == "" {
		writeError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.uuidGenerator.New()
	t.Normalize()
	s.traits[t.ID] = t.Clone()
	s.linkSpecies(&t)

	writeData(c, http.StatusCreated, t)
}

func (s *Server) handleUpdateTrait(c *gin.Context) {
	var t trait.Trait
	if err := c.ShouldBindJSON(&t); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.traits[id]; !ok {
		writeError(c, http.StatusNotFound, "trait not found", nil)
		return
	}

	t.ID = id
	t.Normalize()
	s.traits[id] = t.Clone()
	s.linkSpecies(&t)

	writeData(c, http.StatusOK, t)
}

// handleDeleteTrait leaves species links in place
func (s *Server) handleDeleteTrait(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.traits[id]; !ok {
		writeError(c, http.StatusNotFound, "trait not found", nil)
		return
	}

	delete(s.traits, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListModifierTypes(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeData(c, http.StatusOK, s.modifierTypes)
}

// linkSpecies adds the trait to its owning species' trait list. Callers hold the write lock.
func (s *Server) linkSpecies(t *trait.Trait) {
	if t.SpeciesID == nil {
		return
	}

	for _, sp := range s.species {
		if sp.ID != *t.SpeciesID {
			continue
		}
		for _, ref := range sp.Traits {
			if ref.TraitID == t.ID {
				return
			}
		}
		sp.Traits = append(sp.Traits, content.SpeciesTraitRef{TraitID: t.ID})
		return
	}
}
