package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsinha/inventory/pkg/infrastructure/logger"
	"github.com/vsinha/inventory/pkg/interfaces/cli/commands"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := commands.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.Version = version

	err := cmd.ExecuteContext(ctx)
	_ = logger.Sync()

	if err != nil {
		if !errors.Is(err, commands.ErrRejectedRows) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
