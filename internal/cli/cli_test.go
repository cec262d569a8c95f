package cli_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/cli"
	"github.com/mkurov/dela/internal/storage/memory"
)

var fixedNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

// runSession feeds a scripted line-based session to a fresh CLI over a
// memory store and returns everything it printed.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()

	svc := task.NewServiceWithClock(memory.NewStore(), func() time.Time { return fixedNow })
	return runSessionWith(t, svc, lines...)
}

func runSessionWith(t *testing.T, svc *task.Service, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	c := cli.New(svc, in, &out, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := c.Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestExitImmediately(t *testing.T) {
	out := runSession(t, "0")

	assert.Contains(t, out, "=== Task Manager ===")
	assert.Contains(t, out, "Bye.")
}

func TestRunStopsWhenInputEnds(t *testing.T) {
	// No trailing "0": the scanner just runs dry mid-menu.
	out := runSession(t, "2")

	assert.Contains(t, out, "No tasks.")
}

func TestInvalidChoiceReprompts(t *testing.T) {
	out := runSession(t, "9", "banana", "0")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice.\n"))
	assert.Contains(t, out, "Bye.")
}

func TestAddAndListTask(t *testing.T) {
	out := runSession(t,
		"1",          // add
		"Buy milk",   // title
		"two litres", // description
		"1",          // priority by number
		"01.01.2030", // due date
		"Groceries",  // category
		"2",          // list
		"0",
	)

	assert.Contains(t, out, "Created task #1.")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "two litres")
	assert.Contains(t, out, "Низкий 🔵")
	assert.Contains(t, out, "Groceries")
}

func TestAddTaskValidationErrorIsPrinted(t *testing.T) {
	out := runSession(t,
		"1",
		"Buy milk",
		"",
		"nope", // unknown priority passes through to validation
		"01.01.2030",
		"",
		"0",
	)

	assert.Contains(t, out, "Error: invalid priority")
	assert.NotContains(t, out, "Created task")
}

func TestEditTaskClearsDescription(t *testing.T) {
	out := runSession(t,
		"1", "Buy milk", "old note", "1", "01.01.2030", "",
		"3",   // edit
		"1",   // id
		"",    // keep title
		"-",   // clear description
		"",    // keep priority
		"",    // keep due date
		"",    // keep category
		"2",   // list
		"0",
	)

	assert.Contains(t, out, "Updated task #1.")
	assert.NotContains(t, strings.SplitAfterN(out, "Updated task #1.", 2)[1], "old note")
}

func TestEditWithNoChangesDoesNothing(t *testing.T) {
	out := runSession(t,
		"1", "Buy milk", "", "1", "01.01.2030", "",
		"3", "1", "", "", "", "", "",
		"0",
	)

	assert.Contains(t, out, "Nothing to change.")
	assert.NotContains(t, out, "Updated task")
}

func TestEditRejectsMalformedID(t *testing.T) {
	out := runSession(t,
		"3",
		"abc", // re-prompts
		"7",   // unknown id
		"0",
	)

	assert.Contains(t, out, "Invalid id, enter a number.")
	assert.Contains(t, out, "Error: task not found")
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	out := runSession(t,
		"1", "Buy milk", "", "1", "01.01.2030", "",
		"4", "1", "n", // declined
		"4", "1", "y", // confirmed
		"0",
	)

	assert.Contains(t, out, "Error: delete not confirmed")
	assert.Contains(t, out, "Deleted task #1.")
}

func TestCompleteTask(t *testing.T) {
	out := runSession(t,
		"1", "Buy milk", "", "1", "01.01.2030", "",
		"5", "1",
		"0",
	)

	assert.Contains(t, out, "Task #1 completed.")
}

func TestFiltersMenu(t *testing.T) {
	out := runSession(t,
		"1", "Buy milk", "", "1", "01.01.2020", "Groceries", // overdue
		"1", "Write report", "", "4", "01.01.2030", "Work",
		"6",
		"1", "milk", // text search
		"2", "2", // status filter, active
		"3", "groceries", // category, case-insensitive
		"4", "4", // priority urgent
		"5", // overdue
		"0", // back
		"0",
	)

	assert.Contains(t, out, "--- Search / filters ---")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Срочный 🔴")
}

func TestAnalytics(t *testing.T) {
	out := runSession(t,
		"1", "Buy milk", "", "1", "01.01.2020", "Groceries",
		"1", "Write report", "", "2", "01.01.2030", "",
		"5", "2", // complete the report
		"7",
		"0",
	)

	assert.Contains(t, out, "Total: 2  Done: 1  Active: 1  (50% complete)")
	assert.Contains(t, out, "Overdue: 1")
	assert.Contains(t, out, "Uncategorized")
	assert.Contains(t, out, "Groceries")
}
