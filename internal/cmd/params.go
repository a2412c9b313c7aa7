package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/project-koku/snapdeploy/internal/config"
	"github.com/project-koku/snapdeploy/internal/output"
	"github.com/project-koku/snapdeploy/internal/params"
)

// NewParamsCmd creates the params command.
func NewParamsCmd() *cobra.Command {
	var snapshotFile string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print bonfire parameters for a snapshot",
		Long: `Expand the snapshot into bonfire --set-template-ref/--set-parameter
pairs and print them as one space-joined line, ready for appending to a
bonfire deploy invocation.

The snapshot comes from the SNAPSHOT environment variable, or from
--snapshot-file (YAML or JSON). PR_NUMBER selects the pr-<number>- tag prefix
and BONFIRE_COMPONENT_NAME uniformly overrides component names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(cmd, snapshotFile)
		},
	}

	cmd.Flags().StringVarP(&snapshotFile, "snapshot-file", "f", "",
		"Read the snapshot from a file instead of the SNAPSHOT environment variable")

	return cmd
}

func runParams(cmd *cobra.Command, snapshotFile string) error {
	cfg, err := config.LoadDeploy()
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(cfg, snapshotFile)
	if err != nil {
		return err
	}

	output.Debug("expanding snapshot",
		"application", snap.Application,
		"components", len(snap.Components),
		"prNumber", cfg.PRNumber,
	)

	tokens, err := params.Build(snap, params.Options{
		PRNumber:      cfg.PRNumber,
		ComponentName: cfg.ComponentName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), params.Line(tokens))
	return nil
}
