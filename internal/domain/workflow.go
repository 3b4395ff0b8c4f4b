// Package domain holds the document generation pipeline: filtering, loading,
// building and the workflow that drives them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gobwas/glob"
	"github.com/mouse-blink/dirdoc/internal/adapter"
	"github.com/mouse-blink/dirdoc/internal/controller"
	m "github.com/mouse-blink/dirdoc/internal/model"
	"go.uber.org/zap"
)

// ListArgs selects the candidate files under Root.
type ListArgs struct {
	Root       m.Path
	Extensions m.ExtensionSet
	Exclude    []string
}

// Validate checks that a scan has a root and at least one extension.
func (a *ListArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Root, validation.Required),
		validation.Field(&a.Extensions, validation.Required.Error("at least one extension is required")),
		validation.Field(&a.Exclude, validation.Each(validation.By(compilableGlob))),
	)
}

// GenerateArgs describes a full document generation run.
type GenerateArgs struct {
	ListArgs
	Output m.Path
}

// Validate checks the scan arguments and the destination.
func (a *GenerateArgs) Validate() error {
	if err := a.ListArgs.Validate(); err != nil {
		return err
	}

	return validation.ValidateStruct(a,
		validation.Field(&a.Output, validation.Required),
	)
}

// ViewArgs points at a previously generated document.
type ViewArgs struct {
	Document m.Path
}

// Validate checks that a document path was given.
func (a *ViewArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Document, validation.Required),
	)
}

func compilableGlob(value interface{}) error {
	pattern, _ := value.(string)
	if _, err := glob.Compile(pattern, '/'); err != nil {
		return errors.New("must be a valid glob pattern")
	}

	return nil
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Generate(args GenerateArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.DocumentStore
	ui        controller.UI
	logger    *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.DocumentStore,
	ui controller.UI,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		logger:    logger,
	}
}

// Generate walks args.Root and writes every matching file into one document at
// args.Output. Nothing is written when no file matches.
func (w *workflow) Generate(args GenerateArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	start := time.Now()

	entries, err := w.collect(args.ListArgs)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		w.logger.Info("no matching files", zap.String("root", string(args.Root)))
		w.ui.DisplayNoFiles()

		return nil
	}

	w.ui.DisplayScan(len(entries))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := w.ui.Start(ctx); err != nil {
		w.logger.Warn("progress display unavailable", zap.Error(err))
	}

	summary, err := w.assemble(entries, args.Output)

	stop()
	w.ui.Wait()

	if err != nil {
		return err
	}

	w.logger.Info("document written",
		zap.String("output", string(args.Output)),
		zap.Int("files", len(summary.Files)),
		zap.Int("blocks", summary.Blocks),
		zap.Int("unreadable", summary.Unreadable()),
		zap.Duration("elapsed", time.Since(start)),
	)
	w.ui.DisplaySummary(summary)

	return nil
}

// List reports the files Generate would include without writing anything.
func (w *workflow) List(args ListArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	entries, err := w.collect(args)
	if err != nil {
		return err
	}

	return w.ui.DisplayCandidates(entries)
}

// View loads a generated document and displays its blocks.
func (w *workflow) View(args ViewArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	doc, err := w.store.Load(args.Document)
	if err != nil {
		return fmt.Errorf("failed to load document %s: %w", args.Document, err)
	}

	w.logger.Debug("document loaded",
		zap.String("path", string(args.Document)),
		zap.Int("blocks", doc.Len()),
	)

	return w.ui.DisplayDocument(doc)
}

// collect validates the root and returns the matching files in walk order.
func (w *workflow) collect(args ListArgs) ([]m.FileEntry, error) {
	info, err := w.fsAdapter.FileInfo(args.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRoot, args.Root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, args.Root)
	}

	filter, err := NewPathFilter(args.Extensions, args.Exclude)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("scanning",
		zap.String("root", string(args.Root)),
		zap.Strings("extensions", args.Extensions.Sorted()),
		zap.Strings("exclude", args.Exclude),
	)

	var entries []m.FileEntry

	err = w.fsAdapter.Walk(args.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrTraversal, path, walkErr)
		}

		if path == string(args.Root) {
			return nil
		}

		rel, err := w.fsAdapter.RelPath(args.Root, m.Path(path))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrTraversal, path, err)
		}

		if filter.Excluded(rel.Slash()) {
			w.logger.Debug("excluded", zap.String("path", rel.Slash()))

			if d.IsDir() {
				return fs.SkipDir
			}

			return nil
		}

		if !filter.Match(d) {
			return nil
		}

		var size int64
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}

		entries = append(entries, m.FileEntry{
			Path: m.Path(path),
			Rel:  rel.Slash(),
			Size: size,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// assemble loads every entry into a new document and saves it to output.
func (w *workflow) assemble(entries []m.FileEntry, output m.Path) (m.Summary, error) {
	loader := NewContentLoader(w.fsAdapter, w.logger)
	builder := NewDocumentBuilder()

	summary := m.Summary{
		Output: output,
		Files:  make([]m.FileReport, 0, len(entries)),
	}

	for i, entry := range entries {
		w.ui.DisplayProcessing(i, len(entries), entry.Rel)

		text, ok := loader.Load(entry)

		if err := builder.BeginFile(entry.Rel); err != nil {
			return summary, err
		}

		lines, err := builder.AppendLines(text)
		if err != nil {
			return summary, err
		}

		if err := builder.EndFile(); err != nil {
			return summary, err
		}

		summary.Files = append(summary.Files, m.FileReport{
			Rel:        entry.Rel,
			Lines:      lines,
			Unreadable: !ok,
		})
	}

	doc, err := builder.Build()
	if err != nil {
		return summary, err
	}

	w.ui.DisplayWriting(output)

	if err := w.store.Save(output, doc); err != nil {
		return summary, fmt.Errorf("%w: %s: %w", ErrSerialization, output, err)
	}

	summary.Written = true
	summary.Blocks = doc.Len()

	return summary, nil
}
