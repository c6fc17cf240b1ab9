package cmd

import (
	"fmt"

	"linked/internal/formatting"

	"github.com/spf13/cobra"
)

// newListCmd creates the command that prints all stored links.
func newListCmd(a *app) *cobra.Command {
	var (
		output    string
		tmpl      string
		noHeaders bool
		maxWidth  int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all stored links",
		Long: `List all abbreviations and their links, sorted by abbreviation.

Examples:
  linked list
  linked ls -o table
  linked list -o json > backup.json
  linked list --template '{{ .Abbreviation }}: {{ .Target | trimPrefix "https://" }}'`,
		Args:    cobra.NoArgs,
		PreRunE: a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Output
			}
			format, err := formatting.ParseFormat(output)
			if err != nil {
				return err
			}
			return runList(cmd, a, formatting.Options{
				Format:         format,
				NoHeaders:      noHeaders,
				Template:       tmpl,
				MaxTargetWidth: maxWidth,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (text, table, json, yaml); defaults to the output setting in config.yaml")
	cmd.Flags().StringVar(&tmpl, "template", "", "Go template rendered once per link; fields .Abbreviation and .Target, sprig functions available")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit the header row in text and table output")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Truncate targets longer than this in text and table output (0 keeps them whole)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(formatting.Formats))
		for i, f := range formatting.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, a *app, options formatting.Options) error {
	// Parse the template before touching the links file.
	formatter, err := formatting.NewFormatter(options)
	if err != nil {
		return err
	}

	m, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	out := cmd.OutOrStdout()
	humanReadable := options.Template == "" && (options.Format == formatting.FormatText || options.Format == formatting.FormatTable)
	if len(m) == 0 && humanReadable {
		if !a.quiet {
			fmt.Fprintln(out, "No links stored yet.")
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "Add your first link:")
			fmt.Fprintln(out, "  linked add gh https://github.com")
		}
		return nil
	}

	return formatter.FormatLinks(out, m)
}
