// afinn scores text with the AFINN sentiment word list.
package main

import (
	"os"

	"github.com/tsawler/afinn/cmd/afinn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
