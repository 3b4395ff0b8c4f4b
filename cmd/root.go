// Package cmd provides the root command and CLI setup for dirdoc.
package cmd

import (
	"os"

	"github.com/mouse-blink/dirdoc/internal/adapter"
	"github.com/mouse-blink/dirdoc/internal/controller"
	"github.com/mouse-blink/dirdoc/internal/domain"
	"github.com/mouse-blink/dirdoc/internal/logging"
	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/mouse-blink/dirdoc/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// workflow is built per command from its output stream unless a test has
// already set it.
var workflow domain.Workflow
var logger = zap.NewNop()

var inputDirFlag string
var outputFileFlag string
var extFlags []string
var excludeFlags []string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirdoc",
		Short: "Collect source files into a single Word document",
		Long: `dirdoc walks a directory tree and writes every file with a matching
extension into one .docx document. Each file starts with a bold
"File: <relative path>" heading followed by its lines and a blank paragraph.

Extensions are case-insensitive and may be given with or without a dot:
  dirdoc --ext rs
  dirdoc --ext .go,.mod -i ./project -o project.docx
  dirdoc --ext go --ext proto -x "vendor" -x "**/*_test.go"`,
		Version:      version.Get().Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := logging.New(verboseFlag, version.Version)
			if err != nil {
				return err
			}

			logger = l

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Generate(domain.GenerateArgs{
				ListArgs: listArgs(),
				Output:   m.Path(outputFileFlag),
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&inputDirFlag, "input-dir", "i", ".", "directory to scan recursively")
	cmd.PersistentFlags().StringArrayVar(&extFlags, "ext", []string{"rs"}, "file extension to include, comma-separated or repeated")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "skip paths matching glob relative to the input dir (can be repeated)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	cmd.Flags().StringVarP(&outputFileFlag, "output-file", "o", "output.docx", "path of the generated document")

	cmd.AddCommand(newListCmd(), newViewCmd(), newVersionCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func workflowFor(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewDocumentStore(),
		ui,
		logger,
	)
}

func listArgs() domain.ListArgs {
	return domain.ListArgs{
		Root:       m.Path(inputDirFlag),
		Extensions: m.ParseExtensions(extFlags),
		Exclude:    excludeFlags,
	}
}
