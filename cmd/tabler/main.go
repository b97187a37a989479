// Command tabler renders tabular data as Markdown, CSV, TSV, HTML,
// fixed-width or box-drawn tables.
//
// Usage:
//
//	tabler render [flags] [file]
//	tabler query --db path [flags] SQL
//
// Every flag can also be set through the environment: TABLER_<FLAG> for the
// global flags and TABLER_<COMMAND>_<FLAG> for command flags, with dashes
// replaced by underscores.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tabler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}
