package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/scrpatch/cmd/scrpatch"
	"github.com/arthur-debert/scrpatch/internal/version"
)

func main() {
	rootCmd := scrpatch.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SCRPATCH",
		Section: "1",
		Source:  "scrpatch " + version.Version,
		Manual:  "scrpatch manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
