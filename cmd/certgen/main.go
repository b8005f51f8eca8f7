package main

import (
	"os"

	"github.com/youruser/certgen/cmd/certgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
