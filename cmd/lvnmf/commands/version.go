// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, build.String())
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				fmt.Fprintf(out, "  go: %s\n", runtime.Version())
			}
		},
	}
}
