package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkurov/dela/internal/domain"
)

var testToday = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestComputeEmptyStore(t *testing.T) {
	summary := Compute(nil, domain.DefaultCategories(), testToday)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Done)
	assert.Equal(t, 0, summary.Active)
	assert.Equal(t, 0, summary.CompletionPercent)
	assert.Equal(t, 0, summary.OverdueCount)

	// All four priorities present with zero counts.
	assert.Len(t, summary.ByPriority, 4)
	for _, p := range domain.Priorities() {
		assert.Equal(t, 0, summary.ByPriority[p])
	}

	// Every registry label present with zero counts.
	for _, label := range domain.DefaultCategories() {
		assert.Equal(t, 0, summary.ByCategory[label])
	}
}

func TestComputeCompletionPercentTruncates(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Priority: domain.PriorityLow, DueDate: "01.01.2030", Category: "Work", Completed: true},
		{ID: 2, Priority: domain.PriorityLow, DueDate: "01.01.2030", Category: "Work"},
		{ID: 3, Priority: domain.PriorityHigh, DueDate: "01.01.2030", Category: "Personal"},
	}

	summary := Compute(tasks, domain.DefaultCategories(), testToday)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Done)
	assert.Equal(t, 2, summary.Active)
	// 1/3 truncates to 33, not 34.
	assert.Equal(t, 33, summary.CompletionPercent)
	assert.Equal(t, 2, summary.ByPriority[domain.PriorityLow])
	assert.Equal(t, 1, summary.ByPriority[domain.PriorityHigh])
	assert.Equal(t, 0, summary.ByPriority[domain.PriorityUrgent])
}

func TestComputeCategoryCountsAreCaseInsensitive(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Priority: domain.PriorityLow, DueDate: "01.01.2030", Category: "work"},
		{ID: 2, Priority: domain.PriorityLow, DueDate: "01.01.2030", Category: "WORK"},
		{ID: 3, Priority: domain.PriorityLow, DueDate: "01.01.2030", Category: domain.CategoryUncategorized},
	}
	labels := append(domain.DefaultCategories(), domain.CategoryUncategorized)

	summary := Compute(tasks, labels, testToday)

	assert.Equal(t, 2, summary.ByCategory["Work"])
	assert.Equal(t, 1, summary.ByCategory[domain.CategoryUncategorized])
	assert.Equal(t, 0, summary.ByCategory["Shopping"])
}

func TestComputeOverdueCount(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Priority: domain.PriorityLow, DueDate: "01.01.2020", Category: "Work"},
		{ID: 2, Priority: domain.PriorityLow, DueDate: "01.01.2020", Category: "Work", Completed: true},
		{ID: 3, Priority: domain.PriorityLow, DueDate: "garbage", Category: "Work"},
		{ID: 4, Priority: domain.PriorityLow, DueDate: "01.01.2030", Category: "Work"},
	}

	summary := Compute(tasks, domain.DefaultCategories(), testToday)

	assert.Equal(t, 1, summary.OverdueCount)
}
