// Package incumbency models class-like records stored in numbered versions under a shared key.
package incumbency

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/category"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/versioning"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Role is the combat role an incumbency fills
type Role string

var Roles = []Role{
	RoleSupport, RoleTank, RoleDebuffer, RoleSustain, RoleShielder, RoleUtility,
	RoleSpecialist, RoleDamageDealer, RoleController, RoleSummoner, RoleBruiser,
}

const (
	RoleNone         Role = ""
	RoleSupport      Role = "support"
	RoleTank         Role = "tank"
	RoleDebuffer     Role = "debuffer"
	RoleSustain      Role = "sustain"
	RoleShielder     Role = "shielder"
	RoleUtility      Role = "utility"
	RoleSpecialist   Role = "specialist"
	RoleDamageDealer Role = "damage dealer"
	RoleController   Role = "controller"
	RoleSummoner     Role = "summoner"
	RoleBruiser      Role = "bruiser"
)

func (r Role) IsValid() bool {
	return r == RoleNone || slices.Contains(Roles, r)
}

// Incumbency is one stored version of a class-like record
type Incumbency struct {
	ID      string `json:"id,omitempty"`
	Key     string `json:"key,omitempty"`
	Name    string `json:"name"`
	Version int    `json:"version"`
	Image   string `json:"image"`

	AlignmentGood    bool `json:"good"`
	AlignmentNeutral bool `json:"neutral"`
	AlignmentEvil    bool `json:"evil"`
	AlignmentUnknown bool `json:"unknown"`

	Role          Role    `json:"role"`
	HPScale       float64 `json:"hp_scale"`
	CVMinimum     int     `json:"cv_minimum"`
	CVFlatCost    int     `json:"cv_flat_cost"`
	CVPercentCost float64 `json:"cv_percent_cost"`
	ACCalc        string  `json:"ac_calc"`
	// the stored field name is misspelled upstream and must be kept for compatibility
	InitiativeBonus int       `json:"intivative_bonus"`
	Description     string    `json:"description"`
	Abilities       []Ability `json:"abilities"`
}

// New returns the blank form a create session starts from
func New() *Incumbency {
	return &Incumbency{
		Version:   1,
		Abilities: []Ability{},
	}
}

// ResolvedKey returns the explicit key or the slug of the name
func (i *Incumbency) ResolvedKey() string {
	return versioning.ResolveKey(i.Key, i.Name)
}

// AddAbility appends a default ability of the first unused type and returns its index
func (i *Incumbency) AddAbility() (int, error) {
	next, ok := category.NextAvailable(category.Used(i.Abilities, Ability.kind), AbilityTypes)
	if !ok {
		return -1, dnderr.Validation("every ability type is already used").
			WithMeta("field", "abilities")
	}

	i.Abilities = append(slices.Clip(i.Abilities), NewAbility(next))
	return len(i.Abilities) - 1, nil
}

// RemoveAbility deletes the ability at index
func (i *Incumbency) RemoveAbility(index int) error {
	if index < 0 || index >= len(i.Abilities) {
		return dnderr.IndexOutOfRange(index, len(i.Abilities)).WithMeta("list", "abilities")
	}

	out := make([]Ability, 0, len(i.Abilities)-1)
	out = append(out, i.Abilities[:index]...)
	i.Abilities = append(out, i.Abilities[index+1:]...)
	return nil
}

// Ability returns a pointer to the ability at index
func (i *Incumbency) Ability(index int) (*Ability, error) {
	if index < 0 || index >= len(i.Abilities) {
		return nil, dnderr.IndexOutOfRange(index, len(i.Abilities)).WithMeta("list", "abilities")
	}
	return &i.Abilities[index], nil
}

// AvailableAbilityTypes lists the types that can still be added
func (i *Incumbency) AvailableAbilityTypes() []AbilityType {
	return category.Remaining(category.Used(i.Abilities, Ability.kind), AbilityTypes)
}

// Validate checks the record before it is saved
func (i *Incumbency) Validate() error {
	if i == nil {
		return dnderr.Validation("incumbency cannot be nil")
	}
	if strings.TrimSpace(i.Name) == "" {
		return dnderr.Validation("incumbency name is required").WithMeta("field", "name")
	}
	if i.Version < 1 {
		return dnderr.Validationf("version must be at least 1, got %d", i.Version).WithMeta("field", "version")
	}
	if i.ResolvedKey() == "" {
		return dnderr.Validation("key could not be derived from name").WithMeta("field", "key")
	}
	if !i.Role.IsValid() {
		return dnderr.Validationf("unknown role %q", i.Role).WithMeta("field", "role")
	}
	for _, a := range i.Abilities {
		if !a.Type.IsValid() {
			return dnderr.Validationf("unknown ability type %q", a.Type).WithMeta("field", "abilities")
		}
	}
	if dups := category.Duplicates(i.Abilities, Ability.kind); len(dups) > 0 {
		return dnderr.Validationf("ability type %q is used more than once", dups[0]).WithMeta("field", "abilities")
	}
	return nil
}

// Clone returns a deep copy
func (i *Incumbency) Clone() *Incumbency {
	if i == nil {
		return nil
	}

	out := *i
	if i.Abilities != nil {
		out.Abilities = make([]Ability, len(i.Abilities))
		for idx, a := range i.Abilities {
			a.TypeAbility = slices.Clone(a.TypeAbility)
			out.Abilities[idx] = a
		}
	}
	return &out
}

// StoredVersion projects the fields the save decision needs
func (i *Incumbency) StoredVersion() versioning.StoredVersion {
	return versioning.StoredVersion{ID: i.ID, Version: i.Version}
}

// StoredVersions projects a list of stored records
func StoredVersions(records []*Incumbency) []versioning.StoredVersion {
	out := make([]versioning.StoredVersion, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, r.StoredVersion())
		}
	}
	return out
}
