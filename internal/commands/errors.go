package commands

import (
	"errors"
	"fmt"
	"io"

	"taskcli/internal/exitcode"
	"taskcli/internal/service"
)

// failAuth prints err from a sign-in/sign-up attempt. A 401 here means
// the credentials were rejected, not that a session is missing.
func failAuth(errOut io.Writer, err error) int {
	var ve *service.ValidationError

	switch {
	case errors.Is(err, service.ErrAuthRequired):
		fmt.Fprintln(errOut, "error: invalid credentials")
		return exitcode.AuthError
	case errors.As(err, &ve):
		fmt.Fprintf(errOut, "error: %v\n", ve)
		return exitcode.UserError
	default:
		var re *service.RequestError
		if errors.As(err, &re) {
			fmt.Fprintf(errOut, "error: %v\n", re)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// fail prints err to errOut and returns the exit code for its category.
// ErrAuthRequired surfaces as a sign-in hint, never as inline detail;
// validation failures and 404s are user errors; everything else is a
// backend error.
func fail(errOut io.Writer, err error) int {
	var ve *service.ValidationError

	switch {
	case errors.Is(err, service.ErrAuthRequired):
		fmt.Fprintln(errOut, "error: not signed in (run: taskcli login)")
		return exitcode.AuthError
	case errors.As(err, &ve):
		fmt.Fprintf(errOut, "error: %v\n", ve)
		return exitcode.UserError
	case service.IsNotFound(err):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
