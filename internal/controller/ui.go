// Package controller provides output adapters for reporting generation progress.
package controller

import (
	"context"

	m "github.com/mouse-blink/dirdoc/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
//
// Start may launch a background reporter. It must stop once ctx is cancelled,
// and Wait blocks until it has done so. Nothing a UI does can change the
// outcome of a run.
type UI interface {
	Start(ctx context.Context) error
	Wait()
	DisplayScan(total int)
	DisplayNoFiles()
	DisplayProcessing(done, total int, rel string)
	DisplayWriting(output m.Path)
	DisplaySummary(summary m.Summary)
	DisplayCandidates(entries []m.FileEntry) error
	DisplayDocument(doc m.Document) error
}
