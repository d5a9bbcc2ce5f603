package main

import (
	"os"

	"github.com/atlo-labs/fuzion-sdk-go/cmd/fuzion/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
