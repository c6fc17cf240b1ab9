package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of linked",
		Long: `Print the version of this linked binary.

Release builds carry the tag they were built from; local builds report "dev",
which self-update refuses to replace.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linked version %s\n", cmd.Root().Version)
		},
	}
}
