// Command backdrop is the Backdrop CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driving/cli"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
