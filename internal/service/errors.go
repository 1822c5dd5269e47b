package service

import (
	"errors"
)

// ErrorKind classifies a failed invocation.
type ErrorKind int

const (
	// KindUnknownFailure covers every failure not raised by the pipeline
	// itself.
	KindUnknownFailure ErrorKind = iota

	// KindInvalidArgument marks a request that failed validation.
	KindInvalidArgument

	// KindCollaboratorFailure marks a failed read from the record store or a
	// failed dispatch to the processor.
	KindCollaboratorFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindCollaboratorFailure:
		return "collaborator_failure"
	default:
		return "unknown_failure"
	}
}

// Error is the failure type returned by [UnitService]. Its message is the
// message of the wrapped error, unchanged.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument wraps err as a [KindInvalidArgument] failure.
func InvalidArgument(err error) error {
	return &Error{Kind: KindInvalidArgument, Err: err}
}

// CollaboratorFailure wraps err as a [KindCollaboratorFailure] failure.
func CollaboratorFailure(err error) error {
	return &Error{Kind: KindCollaboratorFailure, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// [KindUnknownFailure] when there is none.
func KindOf(err error) ErrorKind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}

	return KindUnknownFailure
}
