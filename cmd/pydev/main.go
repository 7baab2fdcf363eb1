package main

import (
	"os"

	"github.com/jag-main/python-dev-template/internal/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
