package cmd

import (
	"fmt"
	"os"

	"linked/internal/cli"
	"linked/internal/clipboard"
	"linked/internal/config"
	"linked/internal/links"
	"linked/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution, including a get that
	// found nothing.
	ExitCodeSuccess = cli.ExitCodeSuccess
	// ExitCodeError indicates a general error (invalid arguments, unreadable
	// or malformed links file, failed write).
	ExitCodeError = cli.ExitCodeError
)

// noSubcommandHint is printed when linked runs without a subcommand.
const noSubcommandHint = "try 'linked --help' for more information"

// newClipboard returns the clipboard used by get. Tests replace it.
var newClipboard = func() clipboard.Clipboard {
	return clipboard.NewSystem()
}

// rootCmd represents the base command for the linked application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = newRootCmd()

// app carries the global flags and the state resolved from them. A fresh app
// backs every command tree built by newRootCmd.
type app struct {
	configDir string
	debug     bool
	quiet     bool

	cfg   config.LinkedConfig
	store *links.Store
}

// newRootCmd builds the complete command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "linked",
		Short: "Store and access important links on demand",
		Long: `linked binds short abbreviations to links and keeps them in a
local JSON file, so a link is always one command away.

Examples:
  linked add gh https://github.com   # Store a link
  linked get gh                      # Copy the link to the clipboard
  linked list                        # Show all stored links

Links are stored in ~/.config/linked/links.json unless --config-dir or
LINKED_CONFIG_DIR points elsewhere.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage:      true,
		PersistentPreRunE: a.initLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), noSubcommandHint)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configDir, "config-dir", "", fmt.Sprintf("Directory holding links and config.yaml (default $%s or ~/.config/linked)", config.ConfigDirEnvVar))
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Write debug diagnostics to stderr")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newGetCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newRemoveCmd(a))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd(a))

	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "linked version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		if cli.IsDataError(err) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), cli.FormatWarning("the links file was left unchanged"))
		}
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	return cli.ExitCode(err)
}

// initLogging sets up stderr diagnostics before any subcommand runs.
func (a *app) initLogging(cmd *cobra.Command, args []string) error {
	level := logging.LevelWarn
	if a.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	logging.Debug("Bootstrap", "Running %s", cmd.CommandPath())
	return nil
}

// load resolves the config directory, reads config.yaml and prepares the
// link store. Commands touching links call it before running.
func (a *app) load(cmd *cobra.Command, args []string) error {
	dir, err := config.ResolveConfigDir(a.configDir)
	if err != nil {
		return err
	}
	if err := config.EnsureConfigDir(dir); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if !a.debug && cfg.LogLevel != "" {
		if level, err := logging.ParseLevel(cfg.LogLevel); err == nil {
			logging.InitForCLI(level, cmd.ErrOrStderr())
		}
	}

	a.store = links.NewStore(dir, links.WithFileName(cfg.LinksFile))
	logging.Debug("Config", "Using links file %s", a.store.Path())
	return nil
}

// exactArgs is cobra.ExactArgs reporting a *cli.UsageError with the
// expected invocation.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &cli.UsageError{Usage: cmd.UseLine(), Message: err.Error()}
		}
		return nil
	}
}

// completeAbbreviations provides shell completion for stored abbreviations
func (a *app) completeAbbreviations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := a.load(cmd, args); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	m, err := a.store.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return m.Abbreviations(), cobra.ShellCompDirectiveNoFileComp
}
