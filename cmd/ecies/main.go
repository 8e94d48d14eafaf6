package main

import (
	"os"

	"ecies256k1/cmd/ecies/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
