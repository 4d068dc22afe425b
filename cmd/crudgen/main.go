// Command crudgen scaffolds Express/Mongoose CRUD modules from resource
// descriptors.
//
// Usage:
//
//	crudgen [command] [flags]
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

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "crudgen: %v\n", err)
		stop()
		os.Exit(1)
	}
}
