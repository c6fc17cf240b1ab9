package cmd

import (
	"fmt"

	"linked/internal/cli"
	"linked/pkg/logging"

	"github.com/spf13/cobra"
)

// newGetCmd creates the command that copies a stored link to the clipboard.
func newGetCmd(a *app) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "get <ABBREV>",
		Short: "Copy the link for an abbreviation to the clipboard",
		Long: `Look up ABBREV and copy its link to the clipboard.

An unknown abbreviation is reported but is not an error. Use --print to write
only the link to stdout, e.g. for command substitution. When no clipboard is
available the link is printed instead.

Examples:
  linked get gh
  open "$(linked get gh --print)"`,
		Args:              exactArgs(1),
		ValidArgsFunction: a.completeAbbreviations,
		PreRunE:           a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, a, args[0], printOnly || !a.cfg.CopyToClipboard)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the link instead of copying it")
	return cmd
}

func runGet(cmd *cobra.Command, a *app, abbrev string, printOnly bool) error {
	m, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	out := cmd.OutOrStdout()
	target, ok := m.Get(abbrev)
	if !ok {
		fmt.Fprintf(out, "no link exists for the abbreviation '%s'\n", abbrev)
		if !a.quiet {
			fmt.Fprintln(out, "Check to make sure the abbreviation exists and try again.")
		}
		return nil
	}

	if printOnly {
		fmt.Fprintln(out, target)
		return nil
	}

	if err := newClipboard().Copy(target); err != nil {
		logging.Warn("Clipboard", "Could not copy link: %v", err)
		if !a.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("clipboard is not available, printing the link instead"))
		}
		fmt.Fprintln(out, target)
		return nil
	}

	fmt.Fprintf(out, "the link for the abbreviation '%s' (%s) was saved to your clipboard\n", abbrev, target)
	return nil
}
