// Package main provides the docguard CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/docguard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
