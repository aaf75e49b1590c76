package main

import (
	"fmt"
	"os"

	"github.com/example/stackgen/internal/cli"
)

func main() {
	rootCmd := cli.RootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
