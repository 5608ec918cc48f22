// Command gofish runs ><> ("Fish") programs.
package main

import (
	"os"

	"github.com/gofish-lang/gofish/cmd/gofish/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
