package errors

import (
	"strings"

	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// ValidationError carries every violated buyer rule, in evaluation order.
type ValidationError struct {
	Fields []model.FieldError
}

func (v ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

func (v ValidationError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrValidation]
}

func (v ValidationError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrValidation]
}

// Has reports whether a rule on the given top-level field failed.
func (v ValidationError) Has(field string) bool {
	for _, f := range v.Fields {
		if len(f.Path) > 0 && f.Path[0] == field {
			return true
		}
	}
	return false
}
