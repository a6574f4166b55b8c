package main

import (
	"os"

	"github.com/abhisek/dropcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
