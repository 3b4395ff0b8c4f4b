package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/dirdoc/internal/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// TUI implements UI using Bubble Tea for an animated progress display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
	started bool
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program on a background goroutine. It keeps
// running until ctx is cancelled.
func (t *TUI) Start(ctx context.Context) error {
	return t.startWithModel(ctx, newProgressModel(t.width()))
}

func (t *TUI) startWithModel(ctx context.Context, model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	group := new(errgroup.Group)
	group.Go(func() error {
		_, err := program.Run()
		return err
	})
	group.Go(func() error {
		<-ctx.Done()
		// Returns immediately if the program already exited.
		program.Send(finishMsg{})

		return nil
	})

	t.program = program
	t.group = group
	t.started = true

	return nil
}

// Wait blocks until the progress program has rendered its last frame.
func (t *TUI) Wait() {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return
	}

	_ = group.Wait()
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// DisplayScan announces how many files will be combined.
func (t *TUI) DisplayScan(total int) {
	t.printf("%s %s\n",
		titleStyle.Render("dirdoc"),
		fmt.Sprintf("found %s files, generating document…", accentStyle.Render(fmt.Sprintf("%d", total))))
}

// DisplayNoFiles reports that nothing matched.
func (t *TUI) DisplayNoFiles() {
	t.printf("%s\n", warnStyle.Render(noFilesMessage))
}

// DisplayProcessing advances the progress bar.
func (t *TUI) DisplayProcessing(done, total int, rel string) {
	t.send(processingMsg{done: done, total: total, rel: rel})
}

// DisplayWriting switches the progress display to the writing spinner.
func (t *TUI) DisplayWriting(output m.Path) {
	t.send(writingMsg{output: output})
}

// DisplaySummary prints the outcome once the progress program is gone.
func (t *TUI) DisplaySummary(summary m.Summary) {
	line := fmt.Sprintf("%s %s files, %s blocks",
		accentStyle.Render("✓"),
		accentStyle.Render(fmt.Sprintf("%d", len(summary.Files))),
		accentStyle.Render(fmt.Sprintf("%d", summary.Blocks)))

	if n := summary.Unreadable(); n > 0 {
		line += warnStyle.Render(fmt.Sprintf(" (%d unreadable)", n))
	}

	t.printf("%s\nDocument written: %s\n", line, headingStyle.Render(string(summary.Output)))
}

// DisplayCandidates lists the files a generate run would include.
func (t *TUI) DisplayCandidates(entries []m.FileEntry) error {
	if len(entries) == 0 {
		t.printf("%s\n", warnStyle.Render(noFilesMessage))
		return nil
	}

	width := t.width() - 12

	var b strings.Builder

	var total int64

	for _, entry := range entries {
		size := mutedStyle.Width(10).Align(lipgloss.Right).Render(fmt.Sprintf("%d", entry.Size))
		b.WriteString(fmt.Sprintf("%s  %s\n", size, accentStyle.Render(truncateLeft(entry.Rel, width))))
		total += entry.Size
	}

	b.WriteString(fmt.Sprintf("\n%s %d files, %d bytes\n", titleStyle.Render("Total"), len(entries), total))
	t.printf("%s", b.String())

	return nil
}

// DisplayDocument renders the blocks of a generated document.
func (t *TUI) DisplayDocument(doc m.Document) error {
	var b strings.Builder

	for _, block := range doc.Blocks {
		switch block.Kind {
		case m.BlockHeading:
			b.WriteString(headingStyle.Render(block.Text))
		case m.BlockLine:
			b.WriteString(block.Text)
		case m.BlockSeparator:
		}

		b.WriteString("\n")
	}

	t.printf("%s", b.String())

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func (t *TUI) width() int {
	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	return defaultWidth
}
