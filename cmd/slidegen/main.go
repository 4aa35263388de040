// Package main implements the slidegen command, which turns a business
// description and a content format into a slideshow script using a hosted
// language model.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/slidegen/internal/generation"
)

// Exit codes.
const (
	exitError = 1
	exitSetup = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, generation.ErrSetup) {
		return exitSetup
	}
	return exitError
}
