// File: cmd/version.go
package cmd

import (
	"fmt"

	"cbdump/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCommand returns the version command.
// It displays the current version of cbdump; --short prints only the number.
func newVersionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of cbdump",
		Long:  `Display the current version information of the cbdump CLI tool.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return versionCmd
}
