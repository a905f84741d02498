package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/buyer-leads/constant"
)

// Tags is an ordered set of tag labels stored as a JSON array column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported scan type %T", src)
	}
	if len(raw) == 0 {
		*t = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if len(out) == 0 {
		out = nil
	}
	*t = out
	return nil
}

// BuyerFields is a normalized buyer record, the output of the buyer validator.
// Optional fields are nil when absent, never empty strings.
type BuyerFields struct {
	FullName     string                `db:"full_name" json:"fullName"`
	Email        *string               `db:"email" json:"email"`
	Phone        string                `db:"phone" json:"phone"`
	City         constant.City         `db:"city" json:"city"`
	PropertyType constant.PropertyType `db:"property_type" json:"propertyType"`
	BHK          *constant.BHK         `db:"bhk" json:"bhk"`
	Purpose      constant.Purpose      `db:"purpose" json:"purpose"`
	BudgetMin    *int64                `db:"budget_min" json:"budgetMin"`
	BudgetMax    *int64                `db:"budget_max" json:"budgetMax"`
	Timeline     constant.Timeline     `db:"timeline" json:"timeline"`
	Source       constant.Source       `db:"source" json:"source"`
	Notes        *string               `db:"notes" json:"notes"`
	Tags         Tags                  `db:"tags" json:"tags"`
	OwnerID      string                `db:"owner_id" json:"ownerId"`
	Status       constant.BuyerStatus  `db:"status" json:"status"`
}

// Buyer represents the buyers table entity
type Buyer struct {
	ID string `db:"id" json:"id"`
	BuyerFields
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// BuyerRequest is the typed request body for creating or updating a buyer.
// Decoding into it rejects structurally malformed JSON; the buyer validator
// applies the domain rules.
type BuyerRequest struct {
	FullName     string   `json:"fullName"`
	Email        *string  `json:"email,omitempty"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	PropertyType string   `json:"propertyType"`
	BHK          *string  `json:"bhk,omitempty"`
	Purpose      string   `json:"purpose"`
	BudgetMin    *int64   `json:"budgetMin,omitempty"`
	BudgetMax    *int64   `json:"budgetMax,omitempty"`
	Timeline     string   `json:"timeline"`
	Source       string   `json:"source"`
	Notes        *string  `json:"notes,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	OwnerID      string   `json:"ownerId,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// UpdateBuyerRequest carries the optimistic concurrency token next to the payload.
type UpdateBuyerRequest struct {
	BuyerRequest
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// UpdateStatusRequest for the quick status action
type UpdateStatusRequest struct {
	Status      string     `json:"status" validate:"required"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// BuyerFilter for listing and exporting buyers
type BuyerFilter struct {
	Search       string `validate:"omitempty,max=100"`
	City         string `validate:"omitempty,city"`
	PropertyType string `validate:"omitempty,propertytype"`
	BHK          string `validate:"omitempty,bhk"`
	Purpose      string `validate:"omitempty,purpose"`
	Timeline     string `validate:"omitempty,timeline"`
	Source       string `validate:"omitempty,source"`
	Status       string `validate:"omitempty,buyerstatus"`
	BudgetMin    *int64 `validate:"omitempty,min=0"`
	BudgetMax    *int64 `validate:"omitempty,min=0"`
}

type BuyerListResponse struct {
	Items      []Buyer `json:"items"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	TotalPages int     `json:"total_pages"`
}

type TagListResponse struct {
	Tags []string `json:"tags"`
}

// ToRequest converts a stored record back into a request, used to re-validate
// partial changes such as a status change.
func (b *BuyerFields) ToRequest() BuyerRequest {
	req := BuyerRequest{
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         string(b.City),
		PropertyType: string(b.PropertyType),
		Purpose:      string(b.Purpose),
		BudgetMin:    b.BudgetMin,
		BudgetMax:    b.BudgetMax,
		Timeline:     string(b.Timeline),
		Source:       string(b.Source),
		Notes:        b.Notes,
		OwnerID:      b.OwnerID,
	}
	if b.BHK != nil {
		bhk := string(*b.BHK)
		req.BHK = &bhk
	}
	if len(b.Tags) > 0 {
		req.Tags = append([]string(nil), b.Tags...)
	}
	status := string(b.Status)
	req.Status = &status
	return req
}
