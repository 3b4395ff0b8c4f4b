package cmd

import (
	"github.com/mouse-blink/dirdoc/internal/domain"
	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <document.docx>",
		Short: "Print a previously generated document",
		Long:  "Print the headings and lines of a document written by dirdoc.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFor(cmd).View(domain.ViewArgs{Document: m.Path(args[0])})
		},
	}

	return cmd
}
