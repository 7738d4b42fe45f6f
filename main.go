package main

import (
	"os"

	"github.com/inkling-app/inkling/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
