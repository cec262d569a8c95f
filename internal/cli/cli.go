// Package cli implements the interactive text menu. It is a thin
// wrapper: every choice calls into the task service and prints the
// result; expected failures are printed and the loop continues.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/domain"
	"github.com/mkurov/dela/internal/ptr"
)

// CLI runs the interactive menu over an input/output pair. Injecting
// the streams keeps the loop testable with scripted sessions.
type CLI struct {
	svc    *task.Service
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a CLI bound to the given service and streams.
func New(svc *task.Service, in io.Reader, out io.Writer, logger *slog.Logger) *CLI {
	return &CLI{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run executes the menu loop until the user selects Exit or input ends.
func (c *CLI) Run(ctx context.Context) error {
	for {
		c.printf("\n=== Task Manager ===\n")
		c.printf("1. Add task\n")
		c.printf("2. List tasks\n")
		c.printf("3. Edit task\n")
		c.printf("4. Delete task\n")
		c.printf("5. Complete task\n")
		c.printf("6. Search / filters\n")
		c.printf("7. Analytics\n")
		c.printf("0. Exit\n")

		choice, ok := c.prompt("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.addTask(ctx)
		case "2":
			c.listAll(ctx)
		case "3":
			c.editTask(ctx)
		case "4":
			c.deleteTask(ctx)
		case "5":
			c.completeTask(ctx)
		case "6":
			if done := c.filtersMenu(ctx); done {
				return nil
			}
		case "7":
			c.showStats(ctx)
		case "0":
			c.printf("Bye.\n")
			return nil
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) addTask(ctx context.Context) {
	title, ok := c.prompt("Title: ")
	if !ok {
		return
	}
	description, ok := c.prompt("Description (optional): ")
	if !ok {
		return
	}
	priority, ok := c.promptPriority("Priority")
	if !ok {
		return
	}
	dueDate, ok := c.prompt("Due date (dd.mm.yyyy): ")
	if !ok {
		return
	}
	category, ok := c.prompt("Category (blank = " + domain.CategoryUncategorized + "): ")
	if !ok {
		return
	}

	created, err := c.svc.CreateTask(ctx, task.CreateTaskParams{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Category:    category,
	})
	if err != nil {
		c.printError(err)
		return
	}
	c.printf("Created task #%d.\n", created.ID)
}

func (c *CLI) listAll(ctx context.Context) {
	tasks, err := c.svc.ListTasks(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	c.printTasks(tasks)
}

func (c *CLI) editTask(ctx context.Context) {
	id, ok := c.promptID()
	if !ok {
		return
	}

	current, err := c.svc.GetTask(ctx, id)
	if err != nil {
		c.printError(err)
		return
	}
	c.printTasks([]domain.Task{*current})
	c.printf("Leave a field blank to keep its value.\n")

	params := domain.UpdateTaskParams{ID: id}

	if title, ok := c.prompt("New title: "); !ok {
		return
	} else if title != "" {
		params.Title = ptr.To(title)
	}

	if description, ok := c.prompt("New description ('-' clears it): "); !ok {
		return
	} else if description == "-" {
		params.Description = ptr.To("")
	} else if description != "" {
		params.Description = ptr.To(description)
	}

	if priority, ok := c.promptPriority("New priority"); !ok {
		return
	} else if priority != "" {
		params.Priority = ptr.To(priority)
	}

	if dueDate, ok := c.prompt("New due date (dd.mm.yyyy): "); !ok {
		return
	} else if dueDate != "" {
		params.DueDate = ptr.To(dueDate)
	}

	if category, ok := c.prompt("New category: "); !ok {
		return
	} else if category != "" {
		params.Category = ptr.To(category)
	}

	if params.Empty() {
		c.printf("Nothing to change.\n")
		return
	}

	updated, err := c.svc.UpdateTask(ctx, params)
	if err != nil {
		c.printError(err)
		return
	}
	c.printf("Updated task #%d.\n", updated.ID)
}

func (c *CLI) deleteTask(ctx context.Context) {
	id, ok := c.promptID()
	if !ok {
		return
	}

	answer, ok := c.prompt(fmt.Sprintf("Delete task #%d? (y/N): ", id))
	if !ok {
		return
	}
	confirmed := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	if err := c.svc.DeleteTask(ctx, id, confirmed); err != nil {
		c.printError(err)
		return
	}
	c.printf("Deleted task #%d.\n", id)
}

func (c *CLI) completeTask(ctx context.Context) {
	id, ok := c.promptID()
	if !ok {
		return
	}

	completed, err := c.svc.CompleteTask(ctx, id)
	if err != nil {
		c.printError(err)
		return
	}
	c.printf("Task #%d completed.\n", completed.ID)
}

// filtersMenu runs the search/filter sub-menu. Returns true when input
// ended and the whole program should stop.
func (c *CLI) filtersMenu(ctx context.Context) bool {
	for {
		c.printf("\n--- Search / filters ---\n")
		c.printf("1. Text search\n")
		c.printf("2. Filter by status\n")
		c.printf("3. Filter by category\n")
		c.printf("4. Filter by priority\n")
		c.printf("5. Overdue tasks\n")
		c.printf("0. Back\n")

		choice, ok := c.prompt("Choice: ")
		if !ok {
			return true
		}

		switch choice {
		case "1":
			text, ok := c.prompt("Search text: ")
			if !ok {
				return true
			}
			c.showResult(c.svc.Search(ctx, text))
		case "2":
			filter, ok := c.promptStatus()
			if !ok {
				return true
			}
			if filter == "" {
				c.printf("Invalid choice.\n")
				continue
			}
			c.showResult(c.svc.FilterByStatus(ctx, filter))
		case "3":
			label, ok := c.prompt("Category: ")
			if !ok {
				return true
			}
			c.showResult(c.svc.FilterByCategory(ctx, label))
		case "4":
			priority, ok := c.promptPriority("Priority")
			if !ok {
				return true
			}
			c.showResult(c.svc.FilterByPriority(ctx, domain.Priority(priority)))
		case "5":
			c.showResult(c.svc.Overdue(ctx))
		case "0":
			return false
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *CLI) showStats(ctx context.Context) {
	summary, err := c.svc.Stats(ctx)
	if err != nil {
		c.printError(err)
		return
	}

	c.printf("\n--- Analytics ---\n")
	c.printf("Total: %d  Done: %d  Active: %d  (%d%% complete)\n",
		summary.Total, summary.Done, summary.Active, summary.CompletionPercent)
	c.printf("Overdue: %d\n", summary.OverdueCount)

	c.printf("By priority:\n")
	for _, p := range domain.Priorities() {
		c.printf("  %s\t%d\n", p, summary.ByPriority[p])
	}

	c.printf("By category:\n")
	for _, label := range c.categoryOrder(ctx, summary.ByCategory) {
		c.printf("  %s\t%d\n", label, summary.ByCategory[label])
	}
}

// categoryOrder returns the breakdown labels in registry order with the
// uncategorized sentinel last.
func (c *CLI) categoryOrder(ctx context.Context, byCategory map[string]int) []string {
	labels, err := c.svc.Categories(ctx)
	if err != nil {
		labels = nil
	}

	sentinelSeen := false
	for _, label := range labels {
		if strings.EqualFold(label, domain.CategoryUncategorized) {
			sentinelSeen = true
		}
	}
	if !sentinelSeen {
		if _, ok := byCategory[domain.CategoryUncategorized]; ok {
			labels = append(labels, domain.CategoryUncategorized)
		}
	}
	return labels
}

func (c *CLI) showResult(tasks []domain.Task, err error) {
	if err != nil {
		c.printError(err)
		return
	}
	c.printTasks(tasks)
}

func (c *CLI) printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		c.printf("No tasks.\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t \tTitle\tPriority\tDue\tCategory\tCreated")
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		title := t.Title
		if t.Description != "" {
			title += " — " + t.Description
		}
		fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, mark, title, t.Priority, t.DueDate, t.Category, t.CreatedAt)
	}
	w.Flush()
}

func (c *CLI) printError(err error) {
	switch domain.Kind(err) {
	case domain.KindInternal:
		c.logger.Error("operation failed", "error", err)
	default:
		c.logger.Debug("operation rejected", "error", err)
	}
	c.printf("Error: %v\n", err)
}

// prompt prints a label and reads one trimmed line. The second return
// is false when input is exhausted.
func (c *CLI) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptID reads a task id. Malformed numbers are reported here; the
// core never sees them.
func (c *CLI) promptID() (int, bool) {
	for {
		line, ok := c.prompt("Task id: ")
		if !ok {
			return 0, false
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Invalid id, enter a number.\n")
			continue
		}
		return id, true
	}
}

// promptPriority shows the four levels and accepts either the number or
// the exact label. Unrecognized input is passed through so the core's
// validation produces the failure message.
func (c *CLI) promptPriority(label string) (string, bool) {
	priorities := domain.Priorities()
	for i, p := range priorities {
		c.printf("  %d. %s\n", i+1, p)
	}
	line, ok := c.prompt(label + ": ")
	if !ok {
		return "", false
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(priorities) {
		return string(priorities[n-1]), true
	}
	return line, true
}

func (c *CLI) promptStatus() (domain.StatusFilter, bool) {
	c.printf("  1. All\n  2. Active\n  3. Done\n")
	line, ok := c.prompt("Status: ")
	if !ok {
		return "", false
	}
	switch line {
	case "1":
		return domain.StatusAll, true
	case "2":
		return domain.StatusActive, true
	case "3":
		return domain.StatusDone, true
	}
	return "", true
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
