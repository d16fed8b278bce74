// Nexos CLI - command-line access to the Nexos AI API.
package main

import (
	"os"

	"github.com/nexos-labs/nexos-go/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
