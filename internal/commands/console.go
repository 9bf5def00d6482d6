package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
	"taskcli/internal/viewmodel"
)

func init() {
	Register(&ConsoleCmd{})
}

// ConsoleCmd implements the interactive console mode. One view-model is
// kept for the whole session and reconciled after every mutation, so the
// list is never re-fetched between actions.
type ConsoleCmd struct{}

func (c *ConsoleCmd) Name() string      { return "console" }
func (c *ConsoleCmd) Aliases() []string { return []string{"shell"} }
func (c *ConsoleCmd) Synopsis() string  { return "Interactive mode" }
func (c *ConsoleCmd) Usage() string     { return "taskcli console [common flags]" }
func (c *ConsoleCmd) NeedsAuth() bool   { return true }

func (c *ConsoleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConsoleCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	vm, err := loadModel(ctx, deps.Service)
	if err != nil {
		return fail(errOut, err)
	}

	in := bufio.NewReader(deps.Stdin)

	for {
		printMenu(out)
		choice, err := promptLine(in, out, "Enter your choice (1-6): ")
		if err != nil {
			// EOF ends the session like an explicit exit.
			return exitcode.Success
		}

		var opErr error
		switch choice {
		case "1":
			opErr = c.addFlow(ctx, vm, in, out)
		case "2":
			c.viewFlow(vm, out)
		case "3":
			opErr = c.updateFlow(ctx, vm, in, out)
		case "4":
			opErr = c.deleteFlow(ctx, vm, in, out)
		case "5":
			opErr = c.toggleFlow(ctx, vm, in, out)
		case "6":
			fmt.Fprintln(out, "bye")
			return exitcode.Success
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 6.")
		}

		// A lost session ends the console; there is nothing useful the
		// user can do here until they sign in again.
		if errors.Is(opErr, service.ErrAuthRequired) {
			return fail(errOut, opErr)
		}

		if vm.Status() == viewmodel.StatusError {
			// A failed mutation left the sequence untouched; surface the
			// message and keep going.
			fmt.Fprintf(out, "Error: %s\n", vm.Err())
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  1. Add task")
	fmt.Fprintln(out, "  2. View tasks")
	fmt.Fprintln(out, "  3. Update task")
	fmt.Fprintln(out, "  4. Delete task")
	fmt.Fprintln(out, "  5. Toggle complete")
	fmt.Fprintln(out, "  6. Exit")
	fmt.Fprintln(out)
}

func (c *ConsoleCmd) addFlow(ctx context.Context, vm *viewmodel.Model, in *bufio.Reader, out io.Writer) error {
	title, err := promptLine(in, out, "Title: ")
	if err != nil || title == "" {
		fmt.Fprintln(out, "Title is required. Task not created.")
		return nil
	}
	desc, err := promptLine(in, out, "Description (press Enter to skip): ")
	if err != nil {
		return nil
	}

	payload := service.NewTask{Title: title}
	if desc != "" {
		payload.Description = &desc
	}

	if _, err := vm.Create(ctx, payload); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "Error: %v. Task not created.\n", ve)
		}
		return err
	}
	fmt.Fprintf(out, "Added task %d.\n", vm.Len())
	return nil
}

func (c *ConsoleCmd) viewFlow(vm *viewmodel.Model, out io.Writer) {
	tasks := vm.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks yet. Add a task to get started!")
		return
	}
	for i, task := range tasks {
		output.FormatTaskLong(out, i+1, task)
	}
	fmt.Fprintln(out, output.Summary(tasks))
}

func (c *ConsoleCmd) updateFlow(ctx context.Context, vm *viewmodel.Model, in *bufio.Reader, out io.Writer) error {
	task, ok := c.pickTask(vm, in, out)
	if !ok {
		return nil
	}

	title, err := promptLine(in, out, "New title (press Enter to keep): ")
	if err != nil {
		return nil
	}
	desc, err := promptLine(in, out, "New description (press Enter to keep): ")
	if err != nil {
		return nil
	}

	var patch service.TaskPatch
	if title != "" {
		patch.Title = &title
	}
	if desc != "" {
		patch.Description = &desc
	}
	if patch.IsEmpty() {
		fmt.Fprintln(out, "Nothing to update.")
		return nil
	}

	if _, err := vm.Update(ctx, task.ID, patch); err != nil {
		return err
	}
	fmt.Fprintln(out, "Task updated.")
	return nil
}

func (c *ConsoleCmd) deleteFlow(ctx context.Context, vm *viewmodel.Model, in *bufio.Reader, out io.Writer) error {
	task, ok := c.pickTask(vm, in, out)
	if !ok {
		return nil
	}
	if err := vm.Delete(ctx, task.ID); err != nil {
		return err
	}
	fmt.Fprintln(out, "Task deleted.")
	return nil
}

func (c *ConsoleCmd) toggleFlow(ctx context.Context, vm *viewmodel.Model, in *bufio.Reader, out io.Writer) error {
	task, ok := c.pickTask(vm, in, out)
	if !ok {
		return nil
	}
	updated, err := vm.Toggle(ctx, task.ID)
	if err != nil {
		return err
	}
	if updated.Completed {
		fmt.Fprintln(out, "Task marked completed.")
	} else {
		fmt.Fprintln(out, "Task marked pending.")
	}
	return nil
}

// pickTask prompts for a task number and resolves it against the current
// sequence.
func (c *ConsoleCmd) pickTask(vm *viewmodel.Model, in *bufio.Reader, out io.Writer) (service.Task, bool) {
	if vm.Len() == 0 {
		fmt.Fprintln(out, "No tasks yet.")
		return service.Task{}, false
	}
	answer, err := promptLine(in, out, "Task number: ")
	if err != nil {
		return service.Task{}, false
	}
	num, err := ParseTaskNum([]string{answer})
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return service.Task{}, false
	}
	task, err := vm.Task(num)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return service.Task{}, false
	}
	return task, true
}
