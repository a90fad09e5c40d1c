package calc

import (
	"errors"
	"fmt"
)

// ErrKind discriminates the failure classes of the interpreter. Every error
// the engine reports carries exactly one kind; the front end decides policy
// (report and roll back, or abort) from the same value.
type ErrKind int

const (
	ErrSyntax ErrKind = iota
	ErrUnknownToken
	ErrInsufficientOperands
	ErrNumberFormat
	ErrDomain
	ErrUnitMismatch
	ErrMacroRecursionLimit
)

func (k ErrKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnknownToken:
		return "unknown token"
	case ErrInsufficientOperands:
		return "insufficient operands"
	case ErrNumberFormat:
		return "malformed number"
	case ErrDomain:
		return "domain error"
	case ErrUnitMismatch:
		return "unit mismatch"
	case ErrMacroRecursionLimit:
		return "macro recursion limit"
	}
	return "(wrong error kind)"
}

// CalcError is the single error type surfaced by the engine.
type CalcError struct {
	Kind ErrKind
	Msg  string
}

func (e *CalcError) Error() string {
	return e.Msg
}

func newError(kind ErrKind, format string, args ...interface{}) *CalcError {
	return &CalcError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewError builds a CalcError. Exposed for action catalogs, which report
// their computational failures through the same discriminated type.
func NewError(kind ErrKind, format string, args ...interface{}) *CalcError {
	return newError(kind, format, args...)
}

// IsKind reports whether err is a CalcError of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
