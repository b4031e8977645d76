package devapi

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
)

func (s *Server) handleListIncumbencies(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeData(c, http.StatusOK, s.sortedIncumbencies(func(*incumbency.Incumbency) bool { return true }))
}

func (s *Server) handleGetIncumbency(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.incumbencies[c.Param("id")]
	if !ok {
		writeError(c, http.StatusNotFound, "incumbency not found", nil)
		return
	}
	writeData(c, http.StatusOK, record.Clone())
}

// handleListIncumbencyVersions answers 404 when no version is stored under the key
func (s *Server) handleListIncumbencyVersions(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := c.Param("key")
	out := s.sortedIncumbencies(func(r *incumbency.Incumbency) bool { return r.Key == key })
	if len(out) == 0 {
		writeError(c, http.StatusNotFound, fmt.Sprintf("no versions stored for %s", key), nil)
		return
	}
	writeData(c, http.StatusOK, out)
}

func (s *Server) handleCreateIncumbency(c *gin.Context) {
	var record incumbency.Incumbency
	if err := c.ShouldBindJSON(&record); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	record.Key = record.ResolvedKey()
	if err := record.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "invalid incumbency", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if owner := s.versionOwner(record.Key, record.Version); owner != "" {
		writeError(c, http.StatusConflict,
			fmt.Sprintf("%s version %d already exists", record.Key, record.Version), nil)
		return
	}

	record.ID = s.uuidGenerator.New()
	s.incumbencies[record.ID] = record.Clone()

	writeData(c, http.StatusCreated, record)
}

func (s *Server) handleUpdateIncumbency(c *gin.Context) {
	var record incumbency.Incumbency
	if err := c.ShouldBindJSON(&record); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	record.Key = record.ResolvedKey()
	if err := record.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "invalid incumbency", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.incumbencies[id]; !ok {
		writeError(c, http.StatusNotFound, "incumbency not found", nil)
		return
	}
	if owner := s.versionOwner(record.Key, record.Version); owner != "" && owner != id {
		writeError(c, http.StatusConflict,
			fmt.Sprintf("%s version %d already exists", record.Key, record.Version), nil)
		return
	}

	record.ID = id
	s.incumbencies[id] = record.Clone()

	writeData(c, http.StatusOK, record)
}

func (s *Server) handleDeleteIncumbency(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.incumbencies[id]; !ok {
		writeError(c, http.StatusNotFound, "incumbency not found", nil)
		return
	}

	delete(s.incumbencies, id)
	c.Status(http.StatusNoContent)
}

// versionOwner returns the id of the row holding (key, version). Callers hold the lock.
func (s *Server) versionOwner(key string, version int) string {
	for id, r := range s.incumbencies {
		if r.Key == key && r.Version == version {
			return id
		}
	}
	return ""
}

func (s *Server) sortedIncumbencies(keep func(*incumbency.Incumbency) bool) []*incumbency.Incumbency {
	out := []*incumbency.Incumbency{}
	for _, r := range s.incumbencies {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *incumbency.Incumbency) int {
		if a.Key != b.Key {
			if a.Key < b.Key {
				return -1
			}
			return 1
		}
		return a.Version - b.Version
	})
	return out
}
