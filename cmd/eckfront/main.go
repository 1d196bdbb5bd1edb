// Command eckfront scans and parses Eck source files.
package main

import (
	"os"

	"github.com/ecklang/eckfront/cmd/eckfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
