// Command tourplan plans the shortest closed driving route through a small
// set of locations from a precomputed distance table.
//
//	tourplan --input towns.json
//	tourplan --random 9 --seed 7 --workers 4
//	tourplan --db plans.db --input towns.json --save kenya
//	tourplan --db plans.db --matrix kenya --start Kisumu
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/tourplan/internal/cli"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			os.Exit(cli.ExitSuccess)
		}
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}

	// Ctrl-C cancels a long exhaustive search.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, inv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
