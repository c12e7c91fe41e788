package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gocube/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()
	rootCmd.AddCommand(newEditCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
