// Command golox runs golox source files.
package main

import (
	"os"

	"github.com/loxlang/golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
