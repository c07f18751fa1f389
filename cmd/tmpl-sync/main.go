package main

import (
	"os"

	"github.com/bianoble/tmpl-sync/cmd/tmpl-sync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
