// Package main runs the coa-seeder command line interface.
package main

import (
	"os"

	"github.com/go-petr/coa-seeder/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
