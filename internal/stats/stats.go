// Package stats aggregates a task snapshot into summary counts.
package stats

import (
	"strings"
	"time"

	"github.com/mkurov/dela/internal/domain"
	"github.com/mkurov/dela/internal/query"
)

// Summary holds aggregate counts over a task snapshot.
type Summary struct {
	Total  int
	Done   int
	Active int

	// CompletionPercent is floor(Done*100/Total), 0 for an empty store.
	CompletionPercent int

	// ByPriority includes all four priority values, zero counts too.
	ByPriority map[domain.Priority]int

	// ByCategory maps each known label to the count of tasks whose
	// category matches it case-insensitively.
	ByCategory map[string]int

	OverdueCount int
}

// Compute derives a Summary from a snapshot of tasks and the known
// category labels. It has no side effects.
func Compute(tasks []domain.Task, categories []string, today time.Time) Summary {
	summary := Summary{
		Total:      len(tasks),
		ByPriority: make(map[domain.Priority]int, 4),
		ByCategory: make(map[string]int, len(categories)),
	}

	for _, p := range domain.Priorities() {
		summary.ByPriority[p] = 0
	}

	for _, task := range tasks {
		if task.Completed {
			summary.Done++
		}
		if _, ok := summary.ByPriority[task.Priority]; ok {
			summary.ByPriority[task.Priority]++
		}
	}
	summary.Active = summary.Total - summary.Done

	if summary.Total > 0 {
		summary.CompletionPercent = summary.Done * 100 / summary.Total
	}

	for _, label := range categories {
		count := 0
		for _, task := range tasks {
			if strings.EqualFold(task.Category, label) {
				count++
			}
		}
		summary.ByCategory[label] = count
	}

	summary.OverdueCount = len(query.Overdue(tasks, today))

	return summary
}
