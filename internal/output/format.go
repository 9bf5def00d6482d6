// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskcli/internal/service"
)

// FormatTask formats a one-line task entry.
// Format: "{N:>4}  {MARK}  {TITLE}\n" where MARK is "[x]" for completed
// tasks and "[ ]" otherwise.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s  %s\n", num, mark(task), normalizeTitle(task.Title))
}

// FormatTaskLong formats a task entry followed by an indented description
// line.
func FormatTaskLong(w io.Writer, num int, task service.Task) {
	FormatTask(w, num, task)
	fmt.Fprintf(w, "      %s\n", describeOrNone(task))
}

// FormatTaskDetail prints the full record of a single task.
func FormatTaskDetail(w io.Writer, task service.Task) {
	status := "pending"
	if task.Completed {
		status = "completed"
	}
	fmt.Fprintf(w, "id:          %s\n", task.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "description: %s\n", describeOrNone(task))
	fmt.Fprintf(w, "status:      %s\n", status)
	fmt.Fprintf(w, "created:     %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "updated:     %s\n", task.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// Summary formats the task-count footer for the console view.
func Summary(tasks []service.Task) string {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	pending := len(tasks) - completed
	return fmt.Sprintf("Total: %d tasks (%d completed, %d pending)", len(tasks), completed, pending)
}

func mark(task service.Task) string {
	if task.Completed {
		return "[x]"
	}
	return "[ ]"
}

func describeOrNone(task service.Task) string {
	if task.Description == nil || strings.TrimSpace(*task.Description) == "" {
		return "(none)"
	}
	return flatten(*task.Description)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = flatten(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
