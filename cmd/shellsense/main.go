package main

import (
	"os"

	"github.com/shellsense/shellsense/cmd/shellsense/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
