package trait

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Option is one selectable choice on a trait
type Option struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	PrerequisiteID   *string    `json:"prerequisite_id"`
	PrerequisiteName *string    `json:"prerequisite_name"`
	RequiredLevel    int        `json:"required_level"`
	HasModifiers     bool       `json:"has_modifiers"`
	Modifiers        []Modifier `json:"modifiers"`
}

// OptionField names a scalar option field settable from a form value
type OptionField string

const (
	OptionFieldName             OptionField = "name"
	OptionFieldDescription      OptionField = "description"
	OptionFieldRequiredLevel    OptionField = "required_level"
	OptionFieldPrerequisiteID   OptionField = "prerequisite_id"
	OptionFieldPrerequisiteName OptionField = "prerequisite_name"
)

// Prerequisite returns the reference when both halves are set
func (o *Option) Prerequisite() (PrerequisiteRef, bool) {
	if o.PrerequisiteID == nil || o.PrerequisiteName == nil {
		return PrerequisiteRef{}, false
	}
	return PrerequisiteRef{ID: *o.PrerequisiteID, Name: *o.PrerequisiteName}, true
}

// SetPrerequisite sets both halves of the reference, or clears both when ref is nil
func (o *Option) SetPrerequisite(ref *PrerequisiteRef) error {
	if ref == nil {
		o.PrerequisiteID = nil
		o.PrerequisiteName = nil
		return nil
	}
	if ref.ID == "" || ref.Name == "" {
		return dnderr.InvalidArgument("prerequisite id and name must be set together")
	}

	id, name := ref.ID, ref.Name
	o.PrerequisiteID = &id
	o.PrerequisiteName = &name
	return nil
}

// SetHasModifiers toggles the option's modifier list. Disabling discards it.
func (o *Option) SetHasModifiers(enabled bool) {
	o.HasModifiers = enabled
	if !enabled {
		o.Modifiers = []Modifier{}
	}
}

func (o *Option) AddModifier() {
	o.Modifiers = AddModifier(o.Modifiers)
}

func (o *Option) UpdateModifierField(index int, field ModifierField, value string) error {
	mods, err := UpdateModifierField(o.Modifiers, index, field, value)
	if err != nil {
		return err
	}
	o.Modifiers = mods
	return nil
}

func (o *Option) RemoveModifier(index int) error {
	mods, err := RemoveModifier(o.Modifiers, index)
	if err != nil {
		return err
	}
	o.Modifiers = mods
	return nil
}

func (o Option) clone() Option {
	o.PrerequisiteID = cloneString(o.PrerequisiteID)
	o.PrerequisiteName = cloneString(o.PrerequisiteName)
	o.Modifiers = cloneModifiers(o.Modifiers)
	return o
}

// AddOption appends an empty option and returns its index
func (t *Trait) AddOption() int {
	t.Options = append(slices.Clip(t.Options), Option{
		Modifiers: []Modifier{},
	})
	return len(t.Options) - 1
}

// UpdateOption sets one scalar field from a form value.
// Prerequisites go through SetOptionPrerequisite so the id and name never diverge.
func (t *Trait) UpdateOption(index int, field OptionField, value string) error {
	opt, err := t.Option(index)
	if err != nil {
		return err
	}

	switch field {
	case OptionFieldName:
		opt.Name = value
	case OptionFieldDescription:
		opt.Description = value
	case OptionFieldRequiredLevel:
		level, err := ParseRequiredLevel(value)
		if err != nil {
			return err
		}
		opt.RequiredLevel = level
	case OptionFieldPrerequisiteID, OptionFieldPrerequisiteName:
		return dnderr.InvalidArgumentf("%s must be set with SetOptionPrerequisite", field).
			WithMeta("field", string(field))
	default:
		return dnderr.InvalidArgumentf("unknown option field %q", field).
			WithMeta("field", string(field))
	}

	return nil
}

// SetOptionPrerequisite sets or clears the prerequisite pair on the option at index
func (t *Trait) SetOptionPrerequisite(index int, ref *PrerequisiteRef) error {
	opt, err := t.Option(index)
	if err != nil {
		return err
	}
	return opt.SetPrerequisite(ref)
}

// RemoveOption deletes the option at index. Other options that referenced it keep their reference.
func (t *Trait) RemoveOption(index int) error {
	if index < 0 || index >= len(t.Options) {
		return dnderr.IndexOutOfRange(index, len(t.Options)).WithMeta("list", "options")
	}

	out := make([]Option, 0, len(t.Options)-1)
	out = append(out, t.Options[:index]...)
	t.Options = append(out, t.Options[index+1:]...)
	return nil
}

// ToggleOptionModifiers enables or disables the modifier list of the option at index
func (t *Trait) ToggleOptionModifiers(index int, enabled bool) error {
	opt, err := t.Option(index)
	if err != nil {
		return err
	}
	opt.SetHasModifiers(enabled)
	return nil
}

// ParseRequiredLevel parses a level and enforces the [0, 20] bound
func ParseRequiredLevel(value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return shared.MinRequiredLevel, nil
	}

	level, err := strconv.Atoi(v)
	if err != nil {
		return 0, dnderr.Validationf("required_level %q is not a whole number", value).
			WithMeta("field", string(OptionFieldRequiredLevel))
	}
	if err := checkRequiredLevel(level); err != nil {
		return 0, err
	}
	return level, nil
}

func checkRequiredLevel(level int) error {
	if level < shared.MinRequiredLevel || level > shared.MaxRequiredLevel {
		return dnderr.Validationf("required_level must be between %d and %d, got %d",
			shared.MinRequiredLevel, shared.MaxRequiredLevel, level).
			WithMeta("field", string(OptionFieldRequiredLevel))
	}
	return nil
}
