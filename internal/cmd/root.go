package cmd

import (
	"github.com/spf13/cobra"

	"github.com/project-koku/snapdeploy/internal/output"
)

var (
	// Global flags
	verboseFlag    bool
	timestampsFlag bool
)

// NewRootCmd creates the root command for the snapdeploy CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snapdeploy",
		Short:         "Deploy application snapshots with bonfire",
		Long: `snapdeploy translates an application snapshot into bonfire deploy
parameters and drives ephemeral environment deployments.

The snapshot is read from the SNAPSHOT environment variable (or a file) and
describes one application as a list of components, each pinned to a
digest-addressed container image and a git revision.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logCfg := output.LogConfig{Verbose: verboseFlag}
			if cmd.Flags().Changed("timestamps") {
				logCfg.Timestamps = output.BoolPtr(timestampsFlag)
			}
			output.SetupLogging(logCfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewParamsCmd())
	rootCmd.AddCommand(NewDeployCmd())
	rootCmd.AddCommand(NewLabelsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
