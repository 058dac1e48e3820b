// Package main is the entry point for the msyskit CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/msyskit/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
