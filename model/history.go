package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FieldChange is the before/after value of a single buyer field.
type FieldChange struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// Diff maps a field name to its change. Stored as a JSON object column.
type Diff map[string]FieldChange

func (d Diff) Value() (driver.Value, error) {
	if d == nil {
		d = Diff{}
	}
	b, err := json.Marshal(map[string]FieldChange(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *Diff) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("diff: unsupported scan type %T", src)
	}
	out := Diff{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	*d = out
	return nil
}

// BuyerHistory represents one immutable audit entry of a buyer
type BuyerHistory struct {
	ID        string    `db:"id" json:"id"`
	BuyerID   string    `db:"buyer_id" json:"buyerId"`
	ChangedBy string    `db:"changed_by" json:"changedBy"`
	ChangedAt time.Time `db:"changed_at" json:"changedAt"`
	Diff      Diff      `db:"diff" json:"diff"`
}

// Synthetic diffs recorded when a buyer enters the system.
func CreatedDiff() Diff {
	return Diff{"created": {Old: nil, New: "Buyer created"}}
}

func ImportedDiff() Diff {
	return Diff{"imported": {Old: nil, New: "Buyer imported from CSV"}}
}

// FieldError is one violated rule, scoped to a field path such as ["tags", "2"].
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}
