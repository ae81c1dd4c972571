// Package main is the entry point for the xbelclean CLI.
package main

import (
	"os"

	"github.com/jmylchreest/xbelclean/cmd/xbelclean/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
