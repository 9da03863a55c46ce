package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tagterm/cmd/tagterm"
	"github.com/arthur-debert/tagterm/internal/version"
)

func main() {
	rootCmd := tagterm.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TAGTERM",
		Section: "1",
		Source:  "tagterm " + version.Version,
		Manual:  "tagterm manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
