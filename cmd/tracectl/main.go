package main

import (
	"os"

	"github.com/majorcontext/tracectl/cmd/tracectl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
