// Command lox is the Lox language front end: a tree-walking interpreter
// with an optional REPL.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(cmd.LastExitCode())
}
