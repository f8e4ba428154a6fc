package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/scrpatch/cmd/scrpatch"
	"github.com/arthur-debert/scrpatch/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := scrpatch.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || r.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
