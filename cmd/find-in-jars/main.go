package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrison/find-in-jars/internal/cmd"
)

// Version is the current version of find-in-jars
var Version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd.Version = Version
	code := cmd.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
