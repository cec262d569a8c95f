// Package query provides read-only projections over a task snapshot.
// None of the functions mutate their input; callers pass the store
// contents at call time and receive a filtered copy in the same order.
package query

import (
	"strings"
	"time"

	"github.com/mkurov/dela/internal/domain"
)

// ByStatus filters tasks by completion state. StatusAll returns every
// task.
func ByStatus(tasks []domain.Task, filter domain.StatusFilter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		switch filter {
		case domain.StatusActive:
			if task.Completed {
				continue
			}
		case domain.StatusDone:
			if !task.Completed {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}

// Search matches text case-insensitively as a substring of title or
// description. Blank text returns all tasks unfiltered. An absent
// description never matches.
func Search(tasks []domain.Task, text string) []domain.Task {
	if strings.TrimSpace(text) == "" {
		return append([]domain.Task(nil), tasks...)
	}

	needle := strings.ToLower(text)
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) {
			out = append(out, task)
			continue
		}
		if task.Description != "" && strings.Contains(strings.ToLower(task.Description), needle) {
			out = append(out, task)
		}
	}
	return out
}

// ByCategory matches the category label case-insensitively.
func ByCategory(tasks []domain.Task, label string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.EqualFold(task.Category, label) {
			out = append(out, task)
		}
	}
	return out
}

// ByPriority matches the priority value exactly. Unlike category
// matching this is case-sensitive; see the design notes.
func ByPriority(tasks []domain.Task, priority domain.Priority) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Priority == priority {
			out = append(out, task)
		}
	}
	return out
}

// Overdue returns incomplete tasks whose due date is strictly before
// today. Tasks with a due date that fails to parse are excluded.
func Overdue(tasks []domain.Task, today time.Time) []domain.Task {
	cutoff := truncateToDate(today)
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		due, err := domain.ParseDueDate(task.DueDate)
		if err != nil {
			continue
		}
		if due.Before(cutoff) {
			out = append(out, task)
		}
	}
	return out
}

// truncateToDate drops the time-of-day component so comparisons work on
// calendar dates. ParseDueDate yields UTC midnight, so the cutoff is
// normalized to UTC as well.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
