package service

import "errors"

// ErrorKind classifies which stage of an operation failed so the HTTP
// layer can map it to a status code without parsing error strings.
type ErrorKind string

const (
	KindBadRequest ErrorKind = "INVALID_REQUEST"
	KindUpload     ErrorKind = "UPLOAD_FAILED"
	KindDatabase   ErrorKind = "DATABASE_ERROR"
	KindNotify     ErrorKind = "NOTIFY_FAILED"
	KindInternal   ErrorKind = "INTERNAL_ERROR"
)

// Error is a kinded service error wrapping the underlying cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of a service error, or KindInternal for
// errors that did not originate here.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
