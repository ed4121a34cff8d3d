// Package main is the entry point for the orgwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/harrisonrobin/orgwatch/pkg/cli"
)

// Version information (set by the release build)
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
