package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tagterm/cmd/tagterm"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := tagterm.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tagterm.FormatError(lipgloss.NewRenderer(os.Stderr), err))
		os.Exit(1)
	}
}
