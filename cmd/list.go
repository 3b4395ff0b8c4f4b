package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the files a generate run would include",
		Long: `List walks the input directory with the same extension and exclude
rules as the root command and prints the matching files with their sizes.
No document is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).List(listArgs())
		},
	}

	return cmd
}
