package drafts

import (
	"encoding/json"
	"time"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Kind is the record type a draft holds
type Kind string

const (
	KindTrait      Kind = "trait"
	KindIncumbency Kind = "incumbency"
)

// Draft is an unsaved authoring form kept between edits
type Draft struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Kind      Kind            `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Encode stores v as the draft payload
func (d *Draft) Encode(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to encode draft payload")
	}
	d.Payload = data
	return nil
}

// Decode reads the draft payload into v
func (d *Draft) Decode(v any) error {
	if len(d.Payload) == 0 {
		return dnderr.InvalidArgumentf("draft %s has no payload", d.ID).WithMeta("draft_id", d.ID)
	}
	if err := json.Unmarshal(d.Payload, v); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to decode draft payload").
			WithMeta("draft_id", d.ID)
	}
	return nil
}

func validate(draft *Draft) error {
	if draft == nil {
		return dnderr.InvalidArgument("draft cannot be nil")
	}
	if draft.OwnerID == "" {
		return dnderr.InvalidArgument("draft owner ID is required")
	}
	if draft.Kind != KindTrait && draft.Kind != KindIncumbency {
		return dnderr.InvalidArgumentf("unknown draft kind %q", draft.Kind)
	}
	return nil
}
