package validatorx

import (
	"errors"
	"fmt"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	cerr "github.com/muhammadheryan/buyer-leads/utils/errors"
)

// Mode selects which ownership fields a buyer payload must carry.
type Mode int

const (
	// ModeForm validates only the fields an end user fills in.
	ModeForm Mode = iota
	// ModeAPI additionally requires ownerId and defaults status to New.
	ModeAPI
)

const (
	msgFullName    = "fullName must be between 2 and 80 characters."
	msgEmail       = "Invalid email address."
	msgPhone       = "Phone must be 10-15 digits."
	msgNotes       = "Notes must be at most 1000 characters."
	msgTagEmpty    = "Tags must not be empty."
	msgOwnerID     = "Owner ID is required."
	MsgBHKRequired = "BHK is required for Apartment and Villa properties."
	MsgBudgetOrder = "Maximum budget must be greater than or equal to minimum budget."
)

// buyerInput is the trimmed candidate the field rules run against.
type buyerInput struct {
	FullName     string   `json:"fullName" validate:"required,min=2,max=80"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone" validate:"phone"`
	City         string   `json:"city" validate:"city"`
	PropertyType string   `json:"propertyType" validate:"propertytype"`
	BHK          string   `json:"bhk" validate:"omitempty,bhk"`
	Purpose      string   `json:"purpose" validate:"purpose"`
	BudgetMin    *int64   `json:"budgetMin" validate:"omitempty,min=0"`
	BudgetMax    *int64   `json:"budgetMax" validate:"omitempty,min=0"`
	Timeline     string   `json:"timeline" validate:"timeline"`
	Source       string   `json:"source" validate:"source"`
	Notes        string   `json:"notes" validate:"omitempty,max=1000"`
	Tags         []string `json:"tags" validate:"omitempty,dive,required"`
	OwnerID      string   `json:"ownerId" validate:"required"`
	Status       string   `json:"status" validate:"buyerstatus"`
}

// ValidateBuyer checks a buyer payload against every field rule and then the
// cross-field rules. On success it returns the normalized record; otherwise a
// cerr.ValidationError listing all violations in field order.
func ValidateBuyer(req *model.BuyerRequest, mode Mode) (*model.BuyerFields, error) {
	in := newBuyerInput(req, mode)

	var err error
	if mode == ModeAPI {
		err = ValidateStruct(&in)
	} else {
		err = ValidateStructExcept(&in, "OwnerID", "Status")
	}

	fieldErrs := make([]model.FieldError, 0)
	if err != nil {
		var verrs gpvalidator.ValidationErrors
		if !errors.As(err, &verrs) {
			// InvalidValidationError only happens on a programming mistake.
			panic(err)
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, translate(fe))
		}
	}

	fieldErrs = append(fieldErrs, crossFieldErrors(&in, fieldErrs)...)
	if len(fieldErrs) > 0 {
		return nil, cerr.ValidationError{Fields: fieldErrs}
	}

	return in.normalized(mode), nil
}

func newBuyerInput(req *model.BuyerRequest, mode Mode) buyerInput {
	in := buyerInput{
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		City:         req.City,
		PropertyType: req.PropertyType,
		Purpose:      req.Purpose,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
		Timeline:     req.Timeline,
		Source:       req.Source,
		OwnerID:      strings.TrimSpace(req.OwnerID),
	}
	if req.Email != nil {
		in.Email = strings.TrimSpace(*req.Email)
	}
	if req.BHK != nil {
		in.BHK = strings.TrimSpace(*req.BHK)
	}
	if req.Notes != nil {
		in.Notes = strings.TrimSpace(*req.Notes)
	}
	if len(req.Tags) > 0 {
		in.Tags = make([]string, len(req.Tags))
		for i, tag := range req.Tags {
			in.Tags[i] = strings.TrimSpace(tag)
		}
	}
	if req.Status != nil {
		in.Status = *req.Status
	} else if mode == ModeAPI {
		in.Status = string(constant.BuyerStatusNew)
	}
	return in
}

// crossFieldErrors runs the rules spanning several fields. A rule is skipped
// when one of the fields it reads already failed its own check.
func crossFieldErrors(in *buyerInput, prior []model.FieldError) []model.FieldError {
	failed := make(map[string]bool, len(prior))
	for _, fe := range prior {
		failed[fe.Path[0]] = true
	}

	var out []model.FieldError
	if !failed["propertyType"] && !failed["bhk"] &&
		constant.PropertyType(in.PropertyType).RequiresBHK() && in.BHK == "" {
		out = append(out, model.FieldError{Path: []string{"bhk"}, Message: MsgBHKRequired})
	}
	if !failed["budgetMin"] && !failed["budgetMax"] &&
		in.BudgetMin != nil && in.BudgetMax != nil && *in.BudgetMax < *in.BudgetMin {
		out = append(out, model.FieldError{Path: []string{"budgetMax"}, Message: MsgBudgetOrder})
	}
	return out
}

func (in *buyerInput) normalized(mode Mode) *model.BuyerFields {
	out := &model.BuyerFields{
		FullName:     in.FullName,
		Phone:        in.Phone,
		City:         constant.City(in.City),
		PropertyType: constant.PropertyType(in.PropertyType),
		Purpose:      constant.Purpose(in.Purpose),
		BudgetMin:    copyInt(in.BudgetMin),
		BudgetMax:    copyInt(in.BudgetMax),
		Timeline:     constant.Timeline(in.Timeline),
		Source:       constant.Source(in.Source),
		Tags:         uniqueTags(in.Tags),
	}
	if in.Email != "" {
		email := in.Email
		out.Email = &email
	}
	// bhk only means something for residential property types
	if in.BHK != "" && out.PropertyType.RequiresBHK() {
		bhk := constant.BHK(in.BHK)
		out.BHK = &bhk
	}
	if in.Notes != "" {
		notes := in.Notes
		out.Notes = &notes
	}
	if mode == ModeAPI {
		out.OwnerID = in.OwnerID
		out.Status = constant.BuyerStatus(in.Status)
	}
	return out
}

func translate(fe gpvalidator.FieldError) model.FieldError {
	path := fieldPath(fe.Field())
	return model.FieldError{Path: path, Message: message(path[0], fe.Tag())}
}

func message(field, tag string) string {
	switch field {
	case "fullName":
		return msgFullName
	case "email":
		return msgEmail
	case "phone":
		return msgPhone
	case "budgetMin", "budgetMax":
		return fmt.Sprintf("%s must be a non-negative number.", field)
	case "notes":
		return msgNotes
	case "tags":
		return msgTagEmpty
	case "ownerId":
		return msgOwnerID
	}
	if values, ok := enumTags[tag]; ok {
		return fmt.Sprintf("%s must be one of: %s.", field, strings.Join(values, ", "))
	}
	return fmt.Sprintf("%s is invalid.", field)
}

// fieldPath splits "tags[2]" into ["tags", "2"].
func fieldPath(field string) []string {
	open := strings.IndexByte(field, '[')
	if open < 0 || !strings.HasSuffix(field, "]") {
		return []string{field}
	}
	return []string{field[:open], field[open+1 : len(field)-1]}
}

func uniqueTags(tags []string) model.Tags {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make(model.Tags, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func copyInt(p *int64) *int64 {
	if p == nil {
		return nil
	}
	n := *p
	return &n
}
