package main

import (
	"os"

	"github.com/navitone/themesync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
