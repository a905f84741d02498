// Package diff computes the field-level changes between two buyer records for
// the audit trail.
package diff

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
)

// field knows how to read, compare and write one audited buyer field.
// get returns nil for an absent optional value so it serializes as null.
type field struct {
	name  string
	get   func(b *model.BuyerFields) interface{}
	equal func(a, b *model.BuyerFields) bool
	set   func(b *model.BuyerFields, v interface{})
}

// auditedFields excludes id, updatedAt and the immutable ownerId.
var auditedFields = []field{
	{
		name:  "fullName",
		get:   func(b *model.BuyerFields) interface{} { return b.FullName },
		equal: func(a, b *model.BuyerFields) bool { return a.FullName == b.FullName },
		set:   func(b *model.BuyerFields, v interface{}) { b.FullName = asString(v) },
	},
	{
		name:  "email",
		get:   func(b *model.BuyerFields) interface{} { return optString(b.Email) },
		equal: func(a, b *model.BuyerFields) bool { return equalPtr(a.Email, b.Email) },
		set:   func(b *model.BuyerFields, v interface{}) { b.Email = toStringPtr(v) },
	},
	{
		name:  "phone",
		get:   func(b *model.BuyerFields) interface{} { return b.Phone },
		equal: func(a, b *model.BuyerFields) bool { return a.Phone == b.Phone },
		set:   func(b *model.BuyerFields, v interface{}) { b.Phone = asString(v) },
	},
	{
		name:  "city",
		get:   func(b *model.BuyerFields) interface{} { return b.City },
		equal: func(a, b *model.BuyerFields) bool { return a.City == b.City },
		set:   func(b *model.BuyerFields, v interface{}) { b.City = constant.City(asString(v)) },
	},
	{
		name:  "propertyType",
		get:   func(b *model.BuyerFields) interface{} { return b.PropertyType },
		equal: func(a, b *model.BuyerFields) bool { return a.PropertyType == b.PropertyType },
		set:   func(b *model.BuyerFields, v interface{}) { b.PropertyType = constant.PropertyType(asString(v)) },
	},
	{
		name: "bhk",
		get: func(b *model.BuyerFields) interface{} {
			if b.BHK == nil {
				return nil
			}
			return *b.BHK
		},
		equal: func(a, b *model.BuyerFields) bool { return equalPtr(a.BHK, b.BHK) },
		set: func(b *model.BuyerFields, v interface{}) {
			if v == nil {
				b.BHK = nil
				return
			}
			bhk := constant.BHK(asString(v))
			b.BHK = &bhk
		},
	},
	{
		name:  "purpose",
		get:   func(b *model.BuyerFields) interface{} { return b.Purpose },
		equal: func(a, b *model.BuyerFields) bool { return a.Purpose == b.Purpose },
		set:   func(b *model.BuyerFields, v interface{}) { b.Purpose = constant.Purpose(asString(v)) },
	},
	{
		name:  "budgetMin",
		get:   func(b *model.BuyerFields) interface{} { return optInt(b.BudgetMin) },
		equal: func(a, b *model.BuyerFields) bool { return equalPtr(a.BudgetMin, b.BudgetMin) },
		set:   func(b *model.BuyerFields, v interface{}) { b.BudgetMin = toIntPtr(v) },
	},
	{
		name:  "budgetMax",
		get:   func(b *model.BuyerFields) interface{} { return optInt(b.BudgetMax) },
		equal: func(a, b *model.BuyerFields) bool { return equalPtr(a.BudgetMax, b.BudgetMax) },
		set:   func(b *model.BuyerFields, v interface{}) { b.BudgetMax = toIntPtr(v) },
	},
	{
		name:  "timeline",
		get:   func(b *model.BuyerFields) interface{} { return b.Timeline },
		equal: func(a, b *model.BuyerFields) bool { return a.Timeline == b.Timeline },
		set:   func(b *model.BuyerFields, v interface{}) { b.Timeline = constant.Timeline(asString(v)) },
	},
	{
		name:  "source",
		get:   func(b *model.BuyerFields) interface{} { return b.Source },
		equal: func(a, b *model.BuyerFields) bool { return a.Source == b.Source },
		set:   func(b *model.BuyerFields, v interface{}) { b.Source = constant.Source(asString(v)) },
	},
	{
		name:  "status",
		get:   func(b *model.BuyerFields) interface{} { return b.Status },
		equal: func(a, b *model.BuyerFields) bool { return a.Status == b.Status },
		set:   func(b *model.BuyerFields, v interface{}) { b.Status = constant.BuyerStatus(asString(v)) },
	},
	{
		name:  "notes",
		get:   func(b *model.BuyerFields) interface{} { return optString(b.Notes) },
		equal: func(a, b *model.BuyerFields) bool { return equalPtr(a.Notes, b.Notes) },
		set:   func(b *model.BuyerFields, v interface{}) { b.Notes = toStringPtr(v) },
	},
	{
		name: "tags",
		get: func(b *model.BuyerFields) interface{} {
			return append([]string{}, b.Tags...)
		},
		equal: func(a, b *model.BuyerFields) bool { return sameSet(a.Tags, b.Tags) },
		set: func(b *model.BuyerFields, v interface{}) {
			tags := asStrings(v)
			if len(tags) == 0 {
				b.Tags = nil
				return
			}
			b.Tags = append(model.Tags(nil), tags...)
		},
	},
}

// Buyers returns every audited field whose value differs between old and next.
// An empty result means the update carries nothing worth auditing.
func Buyers(old, next *model.BuyerFields) model.Diff {
	out := model.Diff{}
	for _, f := range auditedFields {
		if f.equal(old, next) {
			continue
		}
		out[f.name] = model.FieldChange{Old: f.get(old), New: f.get(next)}
	}
	return out
}

// Apply writes the new side of every change in d onto a copy of old. Unknown
// keys such as the synthetic "created" entry are ignored.
func Apply(old model.BuyerFields, d model.Diff) model.BuyerFields {
	out := old
	for _, f := range auditedFields {
		change, ok := d[f.name]
		if !ok {
			continue
		}
		f.set(&out, change.New)
	}
	return out
}

// ChangedFields lists the keys of d in a stable order for logs and events.
func ChangedFields(d model.Diff) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// sameSet compares tags by membership; nil and empty are both "no tags".
func sameSet(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, t := range a {
		as[t] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, t := range b {
		bs[t] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for t := range bs {
		if _, ok := as[t]; !ok {
			return false
		}
	}
	return true
}

func optString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optInt(p *int64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func toStringPtr(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

func toIntPtr(v interface{}) *int64 {
	if v == nil {
		return nil
	}
	n := asInt(v)
	return &n
}

// The as* helpers accept both in-memory values and values decoded from a
// stored JSON diff.
func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

func asInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	}
	return 0
}

func asStrings(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return t
	case model.Tags:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, asString(item))
		}
		return out
	}
	return nil
}
