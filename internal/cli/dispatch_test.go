package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
	"taskcli/internal/testutil"
)

// runDispatcher runs args through a dispatcher wired to svc, with the
// config dir pinned to a temp dir so nothing touches the real one.
func runDispatcher(t *testing.T, svc *testutil.FakeService, args []string, stdin string) (stdout, stderr string, code int) {
	t.Helper()

	svcFactory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
	authFactory := func(ctx context.Context, cfg *config.Config) (service.Auth, error) {
		return svc, nil
	}

	d := cli.NewDispatcher(commands.DefaultRegistry, svcFactory, authFactory)

	var outBuf, errBuf bytes.Buffer
	full := append([]string{}, args...)
	// Pin --config ahead of the command's own args.
	if len(full) > 0 {
		full = append([]string{full[0], "--config", t.TempDir()}, full[1:]...)
	}
	code = d.Run(context.Background(), full, strings.NewReader(stdin), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatchUnknownCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runDispatcher(t, svc, []string{"frobnicate"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown command: frobnicate\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatchFlagBeforeCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"--quiet", "list"}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if errBuf.String() != "error: unknown command: --quiet\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

func TestDispatchUnknownFlag(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runDispatcher(t, svc, []string{"list", "--bogus"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown flag: -bogus\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatchFlagNeedsArgument(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runDispatcher(t, svc, []string{"add", "--desc"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "error: flag needs an argument") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatchListThroughDispatcher(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	stdout, stderr, code := runDispatcher(t, svc, []string{"list"}, "")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "   1  [ ]  Buy milk\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestDispatchAliasResolves(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	stdout, _, code := runDispatcher(t, svc, []string{"ls"}, "")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  [ ]  Buy milk\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestDispatchLongFlag(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "2 liters")

	stdout, _, code := runDispatcher(t, svc, []string{"list", "--long"}, "")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  [ ]  Buy milk\n      2 liters\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestDispatchEditFlags(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "2 liters")

	stdout, stderr, code := runDispatcher(t, svc, []string{"edit", "--title", "Buy oat milk", "1"}, "")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	task := svc.Tasks()[0]
	if task.Title != "Buy oat milk" {
		t.Errorf("unexpected title: %q", task.Title)
	}
	if task.Description == nil || *task.Description != "2 liters" {
		t.Error("description must be left unchanged")
	}
}

func TestDispatchNoArgsDefaultsToList(t *testing.T) {
	svc := testutil.NewFakeService()
	svcFactory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, svcFactory, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), nil, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, errBuf.String())
	}
	if outBuf.String() != "no tasks found\n" {
		t.Errorf("unexpected stdout: %q", outBuf.String())
	}
}

func TestDispatchNeedsAuthWithoutFactory(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"list", "--config", t.TempDir()}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if errBuf.String() != "error: not signed in (run: taskcli login)\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

func TestDispatchNeedsAuthFactoryAuthRequired(t *testing.T) {
	svcFactory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, service.ErrAuthRequired
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, svcFactory, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"list", "--config", t.TempDir()}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if errBuf.String() != "error: not signed in (run: taskcli login)\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

func TestDispatchVersion(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"version", "--config", t.TempDir()}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "taskcli 0.1.0\n" {
		t.Errorf("unexpected stdout: %q", outBuf.String())
	}
}

func TestDispatchHelp(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"help", "--config", t.TempDir()}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(outBuf.String(), "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}
