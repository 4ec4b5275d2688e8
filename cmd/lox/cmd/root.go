// Package cmd implements the lox command-line front end: script
// execution, the REPL, and the -p/--print AST-dump mode.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var printAST bool

// exitCode is set by runFile when a script's diagnostics call for a
// specific process exit status (64 for compile-time errors, 70 for a
// runtime error); it is read by main after Execute returns.
var exitCode int

// LastExitCode reports the exit status the most recent Execute call
// determined, for main to pass to os.Exit.
func LastExitCode() int { return exitCode }

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "A tree-walking interpreter for the Lox language",
	Long: `lox runs Lox programs: scanning, parsing, resolving and then
interpreting the given script, or dropping into a REPL when no script
path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

// Execute runs the root command; main is responsible for exiting with
// LastExitCode() afterward.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&printAST, "print", "p", false, "print the parsed AST instead of interpreting")
}

func run(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	runRepl()
	return nil
}

func runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	source := string(data)

	if printAST {
		return printProgram(source)
	}

	hadError, hadRuntimeError := runSourceOnce(source)
	switch {
	case hadRuntimeError:
		exitCode = 70
	case hadError:
		exitCode = 64
	default:
		exitCode = 0
	}
	return nil
}
