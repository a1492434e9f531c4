// Command collectionkit replays section mutation scripts and prints the
// resulting notification stream.
package main

import (
	"os"

	"github.com/go-drift/collectionkit/cmd/collectionkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
