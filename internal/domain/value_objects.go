package domain

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the fixed calendar date format: two-digit day,
// two-digit month, four-digit year, separated by '.'.
const DueDateLayout = "02.01.2006"

// Title is a validated title value object.
type Title struct {
	value string
}

// NewTitle creates a new Title, trimming surrounding whitespace.
// Returns ErrTitleRequired if the result is empty.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrTitleRequired
	}
	return Title{value: s}, nil
}

// String returns the title value.
func (t Title) String() string {
	return t.value
}

// NewPriority validates and creates a Priority. Matching is exact and
// case-sensitive.
func NewPriority(s string) (Priority, error) {
	priority := Priority(s)

	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return priority, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// ParseDueDate parses a due date in the fixed dd.mm.yyyy format.
// Returns ErrInvalidDueDate for malformed input; it never panics.
func ParseDueDate(s string) (time.Time, error) {
	t, err := time.Parse(DueDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	// time.Parse tolerates single-digit day and month; the format
	// requires both to be zero-padded.
	if t.Format(DueDateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	return t, nil
}

// FormatDate renders a time in the fixed dd.mm.yyyy display format.
func FormatDate(t time.Time) string {
	return t.Format(DueDateLayout)
}

// NormalizeCategory trims a category label. A blank label resolves to
// the CategoryUncategorized sentinel.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryUncategorized
	}
	return s
}
