package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only flags the user actually set
// end up in the patch; everything else is left unchanged server-side.
type EditCmd struct {
	fs     *flag.FlagSet
	title  string
	desc   string
	done   bool
	undone bool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Update a task's fields" }
func (c *EditCmd) Usage() string {
	return "taskcli edit [common flags] [--title <t>] [--desc <d>] [--done|--undone] <n>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.desc, "desc", "", "")
	fs.BoolVar(&c.done, "done", false, "")
	fs.BoolVar(&c.undone, "undone", false, "")
}

// patch assembles a TaskPatch from the flags that were explicitly set.
func (c *EditCmd) patch() service.TaskPatch {
	var p service.TaskPatch
	if c.fs == nil {
		return p
	}
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			p.Title = &c.title
		case "desc":
			p.Description = &c.desc
		case "done":
			v := true
			p.Completed = &v
		case "undone":
			v := false
			p.Completed = &v
		}
	})
	return p
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.done && c.undone {
		fmt.Fprintln(errOut, "error: cannot use both --done and --undone")
		return exitcode.UserError
	}

	patch := c.patch()
	if patch.IsEmpty() {
		fmt.Fprintln(errOut, "error: nothing to update")
		return exitcode.UserError
	}

	vm, err := loadModel(ctx, deps.Service)
	if err != nil {
		return fail(errOut, err)
	}

	task, err := vm.Task(num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if _, err := vm.Update(ctx, task.ID, patch); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
