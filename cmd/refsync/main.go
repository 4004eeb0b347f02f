// Package main is the entry point for the refsync CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"refsync/internal/backend/notion"
	"refsync/internal/backend/todoist"
	"refsync/internal/cli"
	"refsync/internal/commands"
	"refsync/internal/config"
	"refsync/internal/source"
	"refsync/internal/workspace"
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

	// Backend factories injected into the dispatcher
	srcFactory := func(ctx context.Context, cfg *config.Config) (source.Service, error) {
		return todoist.New(ctx, cfg)
	}
	wsFactory := func(ctx context.Context, cfg *config.Config) (workspace.Service, error) {
		return notion.New(cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, srcFactory, wsFactory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
