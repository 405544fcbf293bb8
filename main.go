// gopad combines a file with a key file via XOR, writing the result to a new
// file or atomically replacing the input in place.
package main

import (
	"os"

	"github.com/idelchi/gopad/internal/commands"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		// cobra has already reported the error to stderr.
		os.Exit(1)
	}
}
