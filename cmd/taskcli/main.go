// Package main is the entry point for the taskcli CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskcli/internal/api"
	"taskcli/internal/auth"
	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/logging"
	"taskcli/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Authenticated task service: refuse early when no token is stored so
	// the sign-in hint appears before any network traffic.
	svcFactory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		if !cfg.HasToken() {
			return nil, service.ErrAuthRequired
		}
		source := auth.NewFileSource(cfg.TokenPath())
		return api.New(cfg.BaseURL, source, logging.New(cfg.Debug)), nil
	}

	// Auth collaborator: sign-in/up need no stored credential, sign-out
	// attaches one when present.
	authFactory := func(ctx context.Context, cfg *config.Config) (service.Auth, error) {
		source := auth.NewFileSource(cfg.TokenPath())
		return api.New(cfg.BaseURL, source, logging.New(cfg.Debug)), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, svcFactory, authFactory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
