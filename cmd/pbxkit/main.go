package main

import (
	"os"

	"github.com/jazzharmony/pbxkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
