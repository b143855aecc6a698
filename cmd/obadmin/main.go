// Package main is the obadmin entrypoint.
package main

import (
	"os"

	"github.com/obops/obadmin/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
