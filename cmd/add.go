package cmd

import (
	"fmt"

	"linked/internal/cli"
	"linked/internal/links"
	"linked/pkg/logging"

	"github.com/spf13/cobra"
)

// newAddCmd creates the command that stores or replaces a link.
func newAddCmd(a *app) *cobra.Command {
	var sanitize bool

	cmd := &cobra.Command{
		Use:   "add <ABBREV> <TARGET>",
		Short: "Add or replace a link abbreviation",
		Long: `Store TARGET under the abbreviation ABBREV.

An existing link with the same abbreviation is replaced. Quote targets that
contain spaces or shell metacharacters.

With --sanitize (or sanitizeTargets: true in config.yaml) parentheses and
quotes are stripped from the target before it is stored.

Examples:
  linked add gh https://github.com
  linked add docs 'https://pkg.go.dev/std?tab=packages'
  linked add wiki 'https://en.wikipedia.org/wiki/Go_(programming_language)' --sanitize`,
		Args:    exactArgs(2),
		PreRunE: a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, a, args[0], args[1], sanitize || a.cfg.SanitizeTargets)
		},
	}

	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "Strip parentheses and quotes from the target")
	return cmd
}

func runAdd(cmd *cobra.Command, a *app, abbrev, target string, sanitize bool) error {
	if sanitize {
		target = links.Sanitize(target)
	}

	m, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	_, replaced := m.Get(abbrev)
	if err := m.Set(abbrev, target); err != nil {
		return &cli.UsageError{Usage: cmd.UseLine(), Message: err.Error()}
	}

	if err := a.store.Save(m); err != nil {
		return fmt.Errorf("failed to save links: %w", err)
	}
	logging.Debug("LinkStore", "Stored %q (replaced=%t)", abbrev, replaced)

	if !a.quiet {
		verb := "added"
		if replaced {
			verb = "updated"
		}
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Link '%s' %s: %s", abbrev, verb, target)))
	}
	return nil
}
