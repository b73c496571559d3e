package main

import (
	"os"

	"github.com/JaimeStill/wordmap/cmd/wordmap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
