package main

import (
	"fmt"
	"os"

	"github.com/raphaelgruber/tokenaudit/internal/command"
)

func main() {
	// Add panic recovery for better error messages
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
