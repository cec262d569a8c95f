package domain

import "errors"

// Expected failures returned by the service and repository layers.
// Operations wrap these with context via fmt.Errorf("%w: ...") so
// callers classify with errors.Is (or Kind) rather than string checks.
// None of them is fatal to the process.
var (
	// ErrTitleRequired indicates a title that is blank after trimming.
	ErrTitleRequired = errors.New("title must not be blank")

	// ErrInvalidPriority indicates a value outside the four allowed
	// priority labels.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDueDate indicates a due date that does not parse as
	// dd.mm.yyyy.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrTaskNotFound indicates no task exists with the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskCompleted indicates an update attempt on a completed task.
	ErrTaskCompleted = errors.New("completed task cannot be edited")

	// ErrDeleteNotConfirmed indicates a delete without confirmation.
	// Checked before existence.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// ErrorKind classifies an error for the presentation layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindIllegalState
)

// Kind maps an error to its ErrorKind. Unrecognized errors classify as
// KindInternal.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInvalidPriority),
		errors.Is(err, ErrInvalidDueDate):
		return KindValidation
	case errors.Is(err, ErrTaskNotFound):
		return KindNotFound
	case errors.Is(err, ErrTaskCompleted),
		errors.Is(err, ErrDeleteNotConfirmed):
		return KindIllegalState
	default:
		return KindInternal
	}
}
