// Package main is the entry point for the gridpick CLI.
package main

import (
	"os"

	"github.com/bkanis/gridpick/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
