package shared

import (
	"strings"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// DurationUnit is stored verbatim; nothing here interprets elapsed time
type DurationUnit string

var DurationUnits = []DurationUnit{DurationRounds, DurationMinutes, DurationHours, DurationDays, DurationPermanent}

const (
	DurationNone      DurationUnit = ""
	DurationRounds    DurationUnit = "rounds"
	DurationMinutes   DurationUnit = "minutes"
	DurationHours     DurationUnit = "hours"
	DurationDays      DurationUnit = "days"
	DurationPermanent DurationUnit = "permanent"
)

func (u DurationUnit) IsValid() bool {
	if u == DurationNone {
		return true
	}
	for _, d := range DurationUnits {
		if u == d {
			return true
		}
	}
	return false
}

func ParseDurationUnit(value string) (DurationUnit, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "-" {
		return DurationNone, nil
	}

	u := DurationUnit(v)
	if !u.IsValid() {
		return DurationNone, dnderr.Validationf("unknown duration unit %q", value).
			WithMeta("field", "duration_unit")
	}
	return u, nil
}
