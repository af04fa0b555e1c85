package main

import (
	"os"

	"github.com/dlshle/golodash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
