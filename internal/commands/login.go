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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command: email/password sign-in against
// the auth endpoints, storing the returned bearer credential in the
// config directory.
type LoginCmd struct {
	email string
}

// SetEmail sets the email (for testing).
func (c *LoginCmd) SetEmail(email string) {
	c.email = email
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return []string{"signin"} }
func (c *LoginCmd) Synopsis() string  { return "Sign in and store the session token" }
func (c *LoginCmd) Usage() string     { return "taskcli login [common flags] [--email <e>]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.email, "e", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	source := auth.NewFileSource(cfg.TokenPath())

	// A still-valid stored token means there is nothing to do.
	if cfg.HasToken() {
		if _, err := source.Token(); err == nil {
			if !cfg.Quiet {
				fmt.Fprintln(out, "already signed in")
			}
			return exitcode.Success
		}
	}

	in := bufio.NewReader(deps.Stdin)

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

	sess, err := deps.Auth.SignIn(ctx, email, password)
	if err != nil {
		return failAuth(errOut, err)
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := source.Save(auth.NewToken(sess.Token)); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "signed in as %s\n", email)
	}
	return exitcode.Success
}
