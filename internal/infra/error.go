package infra

import (
	"errors"

	"staymarket/internal/pkg/errs"
)

type StoreErrorKind string

// Store-specific error kinds. KindConflict marks a failed conditional write
// (version mismatch); the shared retry wrapper keys off it.
const (
	KindNotFound  StoreErrorKind = "NOT_FOUND"
	KindConflict  StoreErrorKind = "CONFLICT"
	KindDuplicate StoreErrorKind = "DUPLICATE"
	KindDBFailure StoreErrorKind = "DB_FAILURE"
)

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func NewStoreErr(kind StoreErrorKind, msg string) error {
	return StoreError{Kind: kind, msg: msg}
}

func WrapStoreErr(kind StoreErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
