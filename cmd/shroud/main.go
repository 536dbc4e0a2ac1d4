package main

import (
	"os"

	"shroud/cmd/shroud/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
