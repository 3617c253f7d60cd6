package main

import (
	"fmt"
	"os"

	"cf-insight/cmd/cf-insight/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
