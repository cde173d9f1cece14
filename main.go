package main

import (
	"os"

	"github.com/compozy/members/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
