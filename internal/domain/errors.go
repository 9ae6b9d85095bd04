package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures for status mapping
type ErrorKind int

const (
	ErrorKindInternal ErrorKind = iota
	ErrorKindValidation
	ErrorKindDecode
	ErrorKindRender
	ErrorKindUpload
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindValidation:
		return "validation"
	case ErrorKindDecode:
		return "decode"
	case ErrorKindRender:
		return "render"
	case ErrorKindUpload:
		return "upload"
	default:
		return "internal"
	}
}

// StatusCode returns the HTTP status reported for this kind
func (k ErrorKind) StatusCode() int {
	if k == ErrorKindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrMissingPrompt is returned when the request has no usable prompt
var ErrMissingPrompt = &Error{Kind: ErrorKindValidation, Err: errors.New("Missing 'prompt' in request body.")}

// Error is a classified failure. Op names the step that failed.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and operation name
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or ErrorKindInternal
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindInternal
}

// StatusCode maps any error to the HTTP status it is reported with
func StatusCode(err error) int {
	return KindOf(err).StatusCode()
}
