// Package versioning decides whether saving a versioned record inserts a new version or
// updates an existing one.
package versioning

import (
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Mode is how an edit session was opened
type Mode string

const (
	ModeCreate    Mode = "create"
	ModeEdit      Mode = "edit"
	ModeDuplicate Mode = "duplicate"
)

func (m Mode) IsValid() bool {
	return m == ModeCreate || m == ModeEdit || m == ModeDuplicate
}

// Verb is the persistence call a save resolves to
type Verb string

const (
	VerbInsert Verb = "insert"
	VerbUpdate Verb = "update"
)

// Session tracks one edit of a versioned record from open to save.
// Once closed it cannot be saved again.
type Session struct {
	Mode        Mode   `json:"mode"`
	LoadedID    string `json:"loaded_id,omitempty"`
	BaseVersion *int   `json:"base_version,omitempty"`
	// DraftVersion is the version a duplicate form was opened at
	DraftVersion *int `json:"draft_version,omitempty"`
	Closed       bool `json:"closed"`
}

// NewCreateSession opens a session for a record that has never been stored
func NewCreateSession() *Session {
	return &Session{Mode: ModeCreate}
}

// NewEditSession opens a session over the stored record id
func NewEditSession(id string) *Session {
	return &Session{Mode: ModeEdit, LoadedID: id}
}

// NewDuplicateSession opens a session cloned from the stored record id at baseVersion.
// It returns the version the draft starts at, baseVersion+1.
func NewDuplicateSession(id string, baseVersion int) (*Session, int) {
	base := baseVersion
	draft := baseVersion + 1
	return &Session{
		Mode:         ModeDuplicate,
		LoadedID:     id,
		BaseVersion:  &base,
		DraftVersion: &draft,
	}, draft
}

// unchanged reports whether a duplicate form still carries a version the session proposed
func (s *Session) unchanged(formVersion int) bool {
	if s.BaseVersion != nil && formVersion == *s.BaseVersion {
		return true
	}
	return s.DraftVersion != nil && formVersion == *s.DraftVersion
}

// Close marks the session terminal after a successful write
func (s *Session) Close() {
	s.Closed = true
}

// Validate checks that the session can still be saved
func (s *Session) Validate() error {
	if s == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if s.Closed {
		return dnderr.InvalidArgument("session is already closed")
	}
	if !s.Mode.IsValid() {
		return dnderr.InvalidArgumentf("unknown session mode %q", s.Mode)
	}
	if (s.Mode == ModeEdit || s.Mode == ModeDuplicate) && s.LoadedID == "" {
		return dnderr.InvalidArgumentf("%s session requires a loaded record id", s.Mode)
	}
	if s.Mode == ModeDuplicate && s.BaseVersion == nil {
		return dnderr.InvalidArgument("duplicate session requires a base version")
	}
	return nil
}
