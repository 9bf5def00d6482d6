package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/auth"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
)

func init() {
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command: registers a new account and
// stores the first session token.
type SignupCmd struct {
	name  string
	email string
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return []string{"register"} }
func (c *SignupCmd) Synopsis() string  { return "Create an account and sign in" }
func (c *SignupCmd) Usage() string {
	return "taskcli signup [common flags] [--name <n>] [--email <e>]"
}
func (c *SignupCmd) NeedsAuth() bool { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	in := bufio.NewReader(deps.Stdin)

	name := c.name
	if name == "" {
		var err error
		name, err = promptLine(in, out, "Name: ")
		if err != nil || name == "" {
			fmt.Fprintln(errOut, "error: name required")
			return exitcode.UserError
		}
	}

	email := c.email
	if email == "" {
		var err error
		email, err = promptLine(in, out, "Email: ")
		if err != nil || email == "" {
			fmt.Fprintln(errOut, "error: email required")
			return exitcode.UserError
		}
	}

	password, err := promptLine(in, out, "Password: ")
	if err != nil || password == "" {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}

	sess, err := deps.Auth.SignUp(ctx, name, email, password)
	if err != nil {
		return failAuth(errOut, err)
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	source := auth.NewFileSource(cfg.TokenPath())
	if err := source.Save(auth.NewToken(sess.Token)); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "signed up as %s\n", email)
	}
	return exitcode.Success
}
