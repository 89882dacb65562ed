// Command observe is the schema tool for the observe framework:
// it validates model schemas and generates typed Go declarations.
package main

import (
	"os"

	"github.com/go-drift/observe/cmd/observe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
