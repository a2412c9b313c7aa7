package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/project-koku/snapdeploy/internal/bonfire"
	"github.com/project-koku/snapdeploy/internal/config"
	"github.com/project-koku/snapdeploy/internal/output"
	"github.com/project-koku/snapdeploy/internal/params"
)

// NewDeployCmd creates the deploy command.
func NewDeployCmd() *cobra.Command {
	var (
		snapshotFile string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <namespace> <requester>",
		Short: "Deploy the snapshot to a reserved namespace",
		Long: `Assemble the full bonfire deploy invocation for the snapshot and run it.

<namespace> is the reserved ephemeral namespace and <requester> the pipeline
run name recorded as the namespace requester. Deployment settings (APP_NAME,
REF_ENV, DEPLOY_TIMEOUT, COMPONENTS, credentials, ...) come from the
environment; bonfire's own behavior is not interpreted here.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, args[0], args[1], snapshotFile, dryRun)
		},
	}

	cmd.Flags().StringVarP(&snapshotFile, "snapshot-file", "f", "",
		"Read the snapshot from a file instead of the SNAPSHOT environment variable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Print the bonfire invocation instead of running it")

	return cmd
}

func runDeploy(cmd *cobra.Command, namespace, requester, snapshotFile string, dryRun bool) error {
	cfg, err := config.LoadDeploy()
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(cfg, snapshotFile)
	if err != nil {
		return err
	}

	tokens, err := params.Build(snap, params.Options{
		PRNumber:      cfg.PRNumber,
		ComponentName: cfg.ComponentName,
	})
	if err != nil {
		return err
	}

	inv := bonfire.Command(*cfg, namespace, requester, tokens)

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), inv.String())
		return nil
	}

	output.Info("deploying snapshot",
		"application", snap.Application,
		"app", cfg.AppName,
		"namespace", namespace,
		"requester", requester,
		"components", len(snap.Components),
	)

	runner := bonfire.Runner{}
	if err := runner.Run(cmd.Context(), inv); err != nil {
		return fmt.Errorf("bonfire deploy failed: %w", err)
	}

	output.Info("deploy finished", "namespace", namespace)
	return nil
}
