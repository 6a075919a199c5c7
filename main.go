package main

import (
	"os"

	"github.com/compozy/n8n-go/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
