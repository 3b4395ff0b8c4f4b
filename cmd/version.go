package cmd

import (
	"fmt"

	"github.com/mouse-blink/dirdoc/internal/version"
	"github.com/spf13/cobra"
)

var shortVersionFlag bool

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if shortVersionFlag {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())

			return err
		},
	}
	cmd.Flags().BoolVar(&shortVersionFlag, "short", false, "print only the version number")

	return cmd
}
