package shared

import (
	"strings"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// DieType is the polyhedral die a modifier rolls
type DieType string

var DieTypes = []DieType{DieD4, DieD6, DieD8, DieD10, DieD12, DieD20}

const (
	DieNone DieType = ""
	DieD4   DieType = "d4"
	DieD6   DieType = "d6"
	DieD8   DieType = "d8"
	DieD10  DieType = "d10"
	DieD12  DieType = "d12"
	DieD20  DieType = "d20"
)

var dieSides = map[DieType]int{
	DieD4:  4,
	DieD6:  6,
	DieD8:  8,
	DieD10: 10,
	DieD12: 12,
	DieD20: 20,
}

// Sides returns the face count, 0 when unset or unknown
func (d DieType) Sides() int {
	return dieSides[d]
}

func (d DieType) IsValid() bool {
	if d == DieNone {
		return true
	}
	_, ok := dieSides[d]
	return ok
}

// ParseDieType accepts "d6", "D6" or a bare "6"
func ParseDieType(value string) (DieType, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "-" {
		return DieNone, nil
	}
	if !strings.HasPrefix(v, "d") {
		v = "d" + v
	}

	d := DieType(v)
	if !d.IsValid() {
		return DieNone, dnderr.Validationf("unknown die type %q", value).
			WithMeta("field", "die_type")
	}
	return d, nil
}
