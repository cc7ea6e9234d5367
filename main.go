package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/thenoetrevino/atelier/cmd"
	"github.com/thenoetrevino/atelier/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx, os.Args[1:])
	stop()

	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
