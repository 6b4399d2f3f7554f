// Package fault defines the error taxonomy shared by all services.
// Every business failure falls into one of four kinds; storage and I/O
// errors are passed through wrapped and carry no kind.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure.
type Kind int

const (
	// KindValidation means the input breaks a business rule.
	KindValidation Kind = iota
	// KindConflict means a uniqueness constraint would be violated.
	KindConflict
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindState means the operation is invalid for the current lifecycle state.
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not found"
	case KindState:
		return "state"
	}
	return "unknown"
}

// Error is a business failure with a kind. Use the constructors below.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Statef builds a lifecycle-state error.
func Statef(format string, args ...any) error {
	return &Error{Kind: KindState, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err (or anything it wraps) is a fault of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// IsValidation reports whether err is a validation fault.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsConflict reports whether err is a conflict fault.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// IsNotFound reports whether err is a not-found fault.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsState reports whether err is a lifecycle-state fault.
func IsState(err error) bool { return IsKind(err, KindState) }
