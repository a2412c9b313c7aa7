package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/project-koku/snapdeploy/internal/config"
	"github.com/project-koku/snapdeploy/internal/labels"
	"github.com/project-koku/snapdeploy/internal/output"
)

// NewLabelsCmd creates the labels command.
func NewLabelsCmd() *cobra.Command {
	var (
		owner   string
		repo    string
		require string
	)

	cmd := &cobra.Command{
		Use:   "labels <pr-number>",
		Short: "Show pull request labels",
		Long: `Fetch the labels of a pull request from GitHub and print them, one per
line. With --require, exit non-zero when the given label is absent — used as
a gate before deploying.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabels(cmd, owner, repo, require, args[0])
		},
	}

	cmd.Flags().StringVar(&owner, "owner", config.DefaultGitHubOwner, "GitHub repository owner")
	cmd.Flags().StringVar(&repo, "repo", config.DefaultGitHubRepository, "GitHub repository name")
	cmd.Flags().StringVar(&require, "require", "", "Fail unless this label is present")

	return cmd
}

func runLabels(cmd *cobra.Command, owner, repo, required, prArg string) error {
	prNumber, err := strconv.Atoi(prArg)
	if err != nil {
		return fmt.Errorf("pr-number must be an integer, got %q", prArg)
	}

	client, err := labels.NewClient(nil)
	if err != nil {
		return err
	}

	names, err := client.Fetch(cmd.Context(), owner, repo, prNumber)
	if err != nil {
		return err
	}

	output.Debug("fetched labels", "owner", owner, "repo", repo, "pr", prNumber, "count", len(names))

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), output.Styled(output.StyleNoun, name))
	}

	if required != "" && !labels.Has(names, required) {
		return NewExitError(
			fmt.Errorf("label %q not present on %s/%s#%d", required, owner, repo, prNumber),
			ExitGateNotSatisfied)
	}
	return nil
}
