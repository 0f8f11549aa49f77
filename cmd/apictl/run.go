// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/apictl/src/cli"
	"github.com/H0llyW00dzZ/apictl/src/logger"
	verpkg "github.com/H0llyW00dzZ/apictl/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code: 0 on success,
// 1 on any error and 130 when interrupted by a signal.
func run() int {
	// Diagnostics go to stderr; stdout carries only the response body.
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, cli.NewApp(version, log), os.Args[1:])
}

// execute runs app with args. A failure is reported on the logger the app
// ended up with, so --log-format json keeps stderr entirely JSON.
func execute(ctx context.Context, app *cli.App, args []string) int {
	log := app.Log

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx, args)
	}()

	select {
	case err := <-done:
		if err != nil {
			app.Log.Println(errorLine(err))
			return 1
		}
		return 0
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the in-flight request a moment to release its connection.
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return 130 // Standard exit code for SIGINT
	}
}

// errorLine renders err as exactly one line.
func errorLine(err error) string {
	return "Error: " + strings.Join(strings.Fields(err.Error()), " ")
}
