package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskcli help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskcli                                       List all tasks
  taskcli list [common flags] [--long]          List tasks (--long adds descriptions)
  taskcli add [common flags] [--desc <text>] <title...>
  taskcli show [common flags] <n>
  taskcli edit [common flags] [--title <t>] [--desc <d>] [--done|--undone] <n>
  taskcli done [common flags] <n>
  taskcli rm [common flags] <n>
  taskcli console [common flags]                Interactive mode
  taskcli login [common flags] [--email <e>]
  taskcli signup [common flags] [--name <n>] [--email <e>]
  taskcli logout [common flags]
  taskcli help
  taskcli version

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override API base URL (or set TASKCLI_API_URL)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Task numbers <n> refer to positions in the current list output.
`
