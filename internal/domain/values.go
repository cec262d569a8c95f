package domain

// Priority represents the severity level of a task.
// Value object - immutable string enum. The four values are the exact
// labels the program displays and accepts; matching is an exact,
// case-sensitive string comparison everywhere tasks are created or
// updated.
type Priority string

const (
	PriorityLow    Priority = "Низкий 🔵"
	PriorityMedium Priority = "Средний 🟡"
	PriorityHigh   Priority = "Высокий 🟠"
	PriorityUrgent Priority = "Срочный 🔴"
)

// Priorities returns the four allowed values in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// StatusFilter selects tasks by completion state.
// Value object - immutable string enum.
type StatusFilter string

const (
	StatusAll    StatusFilter = "ALL"
	StatusActive StatusFilter = "ACTIVE"
	StatusDone   StatusFilter = "DONE"
)

// CategoryUncategorized is the fallback label used when no category is
// supplied. It is never added to the category registry.
const CategoryUncategorized = "Uncategorized"

// DefaultCategories returns the labels the category registry is seeded
// with on startup.
func DefaultCategories() []string {
	return []string{"Work", "Personal", "Shopping"}
}
