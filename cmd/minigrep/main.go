package main

import (
	"os"

	"github.com/arthur-debert/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args, os.Stdout, os.Stderr))
}
