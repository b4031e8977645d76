package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Global flag values
var (
	flagJSON  bool
	flagOwner string
)

var rootCmd = &cobra.Command{
	Use:           "authoring",
	Short:         "Author traits and incumbency versions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", defaultOwner(), "author id used for drafts")

	rootCmd.AddCommand(traitsCmd)
	rootCmd.AddCommand(modifiersCmd)
	rootCmd.AddCommand(incumbencyCmd)
	rootCmd.AddCommand(slugCmd)
}

// execute runs the command tree and releases the application whether or not the command failed
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := closeApp(); err == nil {
		err = closeErr
	}
	return err
}
