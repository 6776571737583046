package main

import (
	"os"

	"github.com/npillmayer/pystr/cmd/pystr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
