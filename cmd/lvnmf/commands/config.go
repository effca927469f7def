// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/config"
)

func newConfigCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print a run configuration as YAML",
		Long: `Print the default run configuration, or the effective one of --config,
as YAML. Redirect it to a file to start a new run configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(from)
			if err != nil {
				return err
			}
			return cfg.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&from, "config", "c", "", "run configuration to normalize")

	return cmd
}
