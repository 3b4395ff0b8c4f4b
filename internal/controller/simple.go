package controller

import (
	"bytes"
	"context"
	"fmt"

	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const noFilesMessage = "No files with matching extensions found."

// SimpleUI implements UI using plain lines on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start is a no-op; plain output needs no background reporter.
func (s *SimpleUI) Start(_ context.Context) error {
	return nil
}

// Wait is a no-op.
func (s *SimpleUI) Wait() {}

// DisplayScan announces how many files will be combined.
func (s *SimpleUI) DisplayScan(total int) {
	s.printf("Found %d files, generating document...\n", total)
}

// DisplayNoFiles reports that nothing matched.
func (s *SimpleUI) DisplayNoFiles() {
	s.printf("%s\n", noFilesMessage)
}

// DisplayProcessing prints one line per file as it is loaded.
func (s *SimpleUI) DisplayProcessing(done, total int, rel string) {
	s.printf("[%d/%d] %s\n", done+1, total, rel)
}

// DisplayWriting reports that serialization has started.
func (s *SimpleUI) DisplayWriting(output m.Path) {
	s.printf("Writing document %s...\n", output)
}

// DisplaySummary prints a per-file table followed by the output location.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Lines", "Status"})

	for _, f := range summary.Files {
		status := "ok"
		if f.Unreadable {
			status = "unreadable"
		}

		table.Append([]string{f.Rel, fmt.Sprintf("%d", f.Lines), status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summary.Files)),
		fmt.Sprintf("%d blocks", summary.Blocks),
		fmt.Sprintf("%d unreadable", summary.Unreadable()),
	})

	table.Render()
	s.printf("\n%s\nDocument written: %s\n", tableBuffer.String(), summary.Output)
}

// DisplayCandidates lists the files a generate run would include.
func (s *SimpleUI) DisplayCandidates(entries []m.FileEntry) error {
	if len(entries) == 0 {
		s.printf("%s\n", noFilesMessage)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Bytes"})

	var total int64

	for _, entry := range entries {
		table.Append([]string{entry.Rel, fmt.Sprintf("%d", entry.Size)})
		total += entry.Size
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(entries)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayDocument prints the blocks of a generated document. Headings are
// wrapped in ** to mark them bold.
func (s *SimpleUI) DisplayDocument(doc m.Document) error {
	for _, block := range doc.Blocks {
		switch block.Kind {
		case m.BlockHeading:
			s.printf("**%s**\n", block.Text)
		case m.BlockLine:
			s.printf("%s\n", block.Text)
		case m.BlockSeparator:
			s.printf("\n")
		}
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_RIGHT
	}

	alignment[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignment)

	return table
}
