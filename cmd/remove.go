package cmd

import (
	"fmt"

	"linked/internal/cli"
	"linked/pkg/logging"

	"github.com/spf13/cobra"
)

// newRemoveCmd creates the command that deletes a stored link.
func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <ABBREV>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a link abbreviation",
		Long: `Delete the link stored under ABBREV.

Removing an abbreviation that does not exist is an error.

Examples:
  linked remove gh
  linked rm gh`,
		Args:              exactArgs(1),
		ValidArgsFunction: a.completeAbbreviations,
		PreRunE:           a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, a, args[0])
		},
	}
}

func runRemove(cmd *cobra.Command, a *app, abbrev string) error {
	m, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	if !m.Delete(abbrev) {
		return &cli.NotFoundError{Abbreviation: abbrev}
	}

	if err := a.store.Save(m); err != nil {
		return fmt.Errorf("failed to save links: %w", err)
	}
	logging.Debug("LinkStore", "Removed %q", abbrev)

	if !a.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Link '%s' removed.", abbrev)))
	}
	return nil
}
