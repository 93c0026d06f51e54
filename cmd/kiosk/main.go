package main

import (
	"fmt"
	"os"

	"github.com/bnema/kiosk/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
