package shared

import (
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Scope says whether a trait is reusable across species or bound to one
type Scope string

const (
	ScopeGeneric  Scope = "generic"
	ScopeSpecific Scope = "specific"
)

func (s Scope) IsValid() bool {
	return s == ScopeGeneric || s == ScopeSpecific
}

func ParseScope(value string) (Scope, error) {
	s := Scope(value)
	if !s.IsValid() {
		return "", dnderr.Validationf("scope must be %q or %q, got %q", ScopeGeneric, ScopeSpecific, value).
			WithMeta("field", "scope")
	}
	return s, nil
}

// Required level bounds for trait options
const (
	MinRequiredLevel = 0
	MaxRequiredLevel = 20
)
