// Command mrta allocates inspection tasks to a robot fleet.
package main

import (
	"os"

	"github.com/katalvlaran/mrta/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
