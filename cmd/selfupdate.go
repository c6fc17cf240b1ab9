package cmd

import (
	"fmt"

	"linked/internal/cli"
	"linked/pkg/logging"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug specifies the GitHub repository (owner/repo) to check for updates.
const githubRepoSlug = "linked-cli/linked"

// newSelfUpdateCmd creates the Cobra command for the self-update functionality.
// This allows the application to update itself to the latest version from GitHub.
func newSelfUpdateCmd(a *app) *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "self-update",
		Short: "Update linked to the latest version",
		Long: `Checks for the latest release of linked on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(cmd, repo, a.quiet)
		},
	}

	cmd.Flags().StringVar(&repo, "repo", githubRepoSlug, "GitHub repository (owner/repo) to fetch releases from")
	return cmd
}

// runSelfUpdate checks the current version against the latest GitHub release
// and replaces the running binary if a newer one exists.
func runSelfUpdate(cmd *cobra.Command, repo string, quiet bool) error {
	currentVersion := cmd.Root().Version
	// Self-update is disabled for development versions (e.g., "dev")
	// as they are not standard releases and might not follow semantic versioning.
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	fmt.Fprintf(out, "Current version: %s\n", currentVersion)

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	stop := cli.StartSpinner(cmd.ErrOrStderr(), "Checking for updates...", quiet)
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	stop()
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest release for %s could not be found", repo)
	}
	logging.Debug("SelfUpdate", "Latest release of %s is %s", repo, latest.Version())

	if !latest.GreaterThan(currentVersion) {
		fmt.Fprintln(out, "Current version is the latest.")
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s (published at %s)\n", latest.Version(), latest.PublishedAt)
	if !quiet && latest.ReleaseNotes != "" {
		fmt.Fprintf(out, "Release notes:\n%s\n", latest.ReleaseNotes)
	}

	// Get the path to the currently running executable to replace it with the new version.
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	stop = cli.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Updating %s to version %s...", exe, latest.Version()), quiet)
	err = updater.UpdateTo(ctx, latest, exe)
	stop()
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Successfully updated to version %s", latest.Version())))
	return nil
}
