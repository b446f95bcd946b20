// Command brreg queries the Enhetsregisteret API from the command line and
// prints the results as JSON.
//
// Configuration is read from flags, BRREG_* environment variables and an
// optional YAML file given with --config, in that order of precedence:
//
//	BRREG_BASE_URL=https://data.brreg.no/enhetsregisteret/api brreg enhet 974760673
//	brreg search enheter --navn Sesam --size 50 --max-pages 2
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
