// Command pathways browses course pathway fixtures as year-by-semester
// grids, and maintains the fixtures and their search documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathways: %v\n", err)
		stop()
		os.Exit(1)
	}
}
