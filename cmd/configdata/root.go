package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "configdata",
		Short:         "Resolve config data locations into resources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(out)
	rootCmd.AddCommand(newResolveCommand(out))

	return rootCmd
}
