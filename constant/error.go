package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidCredential
	ErrForbidden
	ErrValidation
	ErrConflict
	ErrRateLimited
	ErrImportTooLarge
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrInvalidCredential: "email or password invalid",
	ErrForbidden:         "you can only modify your own buyers",
	ErrValidation:        "validation failed",
	ErrConflict:          "record has been modified by another user, please refresh and try again",
	ErrRateLimited:       "rate limit exceeded, please wait before updating more buyers",
	ErrImportTooLarge:    "maximum import rows exceeded",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrInvalidCredential: http.StatusBadRequest,
	ErrForbidden:         http.StatusForbidden,
	ErrValidation:        http.StatusBadRequest,
	ErrConflict:          http.StatusConflict,
	ErrRateLimited:       http.StatusTooManyRequests,
	ErrImportTooLarge:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrInvalidCredential: "0005",
	ErrForbidden:         "0006",
	ErrValidation:        "0007",
	ErrConflict:          "0008",
	ErrRateLimited:       "0009",
	ErrImportTooLarge:    "0010",
}
