// Package main provides the enumgen command line tool.
//
// Usage:
//
//	enumgen generate -c enumgen.yml
//	enumgen generate -b c -o include Color=Red,Green,Blue
//	enumgen check -c enumgen.yml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enumgen",
	Short: "Generate enumeration lookup code",
	Long: `enumgen turns enumeration specs into source files with lookup helpers:
index to value, exact and case-insensitive string to value, and value to string.

Specs are read from the config file, from @enum annotations in the configured
Go sources, and from Name=A,B,C arguments.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure
func Execute() {
	// interrupted runs stop submitting tasks; running ones finish their write
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "enumgen:", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
