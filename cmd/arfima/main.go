package main

import (
	"fmt"
	"os"

	"github.com/avitaltamir/arfima/internal/app"
)

var version = "dev"

func main() {
	// Set the app version for display in the UI
	app.Version = version

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
