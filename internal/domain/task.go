package domain

// Task is the aggregate root of the task manager: a single user-tracked
// to-do item with identity, metadata, and completion state.
type Task struct {
	// ID is assigned by the store, starting at 1 and strictly
	// increasing for the lifetime of the store. IDs are never reused,
	// even after deletion.
	ID int

	Title       string
	Description string // empty = absent

	Priority Priority

	// DueDate holds the calendar date in the fixed dd.mm.yyyy format.
	DueDate string

	// Completed transitions one way, false to true.
	Completed bool

	// Category is a free-form grouping label, trimmed on input.
	// Defaults to CategoryUncategorized when none is supplied.
	Category string

	// CreatedAt is the calendar date stamped at creation, dd.mm.yyyy.
	// Immutable after creation.
	CreatedAt string
}

// UpdateTaskParams contains parameters for updating a task. Each field
// is independently optional: nil leaves the field unchanged, non-nil
// applies the new value.
//
// Description is special-cased: a supplied empty string clears the
// description to absent. Category is resolved through the registry and
// never fails validation.
type UpdateTaskParams struct {
	ID int

	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
	Category    *string
}

// Empty reports whether the params carry no field changes at all.
func (p UpdateTaskParams) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && p.Category == nil
}
