package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fumiama/go-docx"

	m "github.com/mouse-blink/dirdoc/internal/model"
)

// DocumentStore persists and retrieves generated documents.
type DocumentStore interface {
	// Save serializes doc and writes it to path, creating or truncating the file.
	Save(path m.Path, doc m.Document) error
	// Load parses a document previously written by Save.
	Load(path m.Path) (m.Document, error)
}

type docxStore struct{}

// NewDocumentStore constructs a DocumentStore writing Office Open XML (.docx).
func NewDocumentStore() DocumentStore {
	return &docxStore{}
}

// Save renders every block as its own paragraph: headings as a single bold
// run, lines as a single plain run, separators as an empty paragraph.
func (s *docxStore) Save(path m.Path, doc m.Document) error {
	w := docx.New().WithDefaultTheme()

	for _, block := range doc.Blocks {
		para := w.AddParagraph()

		switch block.Kind {
		case m.BlockHeading:
			preserveSpace(para.AddText(block.Text).Bold())
		case m.BlockLine:
			preserveSpace(para.AddText(block.Text))
		case m.BlockSeparator:
		}
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	// #nosec G304 - destination is chosen by the user
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if _, err := w.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write docx: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	return nil
}

// Load reverses Save. A paragraph without runs is a separator, a paragraph
// whose first run is bold is a heading, anything else is a line.
func (s *docxStore) Load(path m.Path) (m.Document, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("read docx: %w", err)
	}

	parsed, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return m.Document{}, fmt.Errorf("parse docx: %w", err)
	}

	var doc m.Document

	for _, item := range parsed.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		doc.Blocks = append(doc.Blocks, paragraphBlock(para))
	}

	return doc, nil
}

// preserveSpace marks every text node of run with xml:space="preserve";
// without it Word drops leading and trailing blanks.
func preserveSpace(run *docx.Run) {
	for _, child := range run.Children {
		if t, ok := child.(*docx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
}

func paragraphBlock(para *docx.Paragraph) m.Block {
	var (
		buf     bytes.Buffer
		runs    int
		heading bool
	)

	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}

		if runs == 0 && run.RunProperties != nil && run.RunProperties.Bold != nil {
			heading = true
		}

		runs++

		for _, rc := range run.Children {
			switch c := rc.(type) {
			case *docx.Text:
				buf.WriteString(c.Text)
			case *docx.Tab:
				buf.WriteByte('\t')
			case *docx.BarterRabbet:
				buf.WriteByte('\n')
			}
		}
	}

	switch {
	case runs == 0:
		return m.Block{Kind: m.BlockSeparator}
	case heading:
		return m.Block{Kind: m.BlockHeading, Text: buf.String()}
	default:
		return m.Block{Kind: m.BlockLine, Text: buf.String()}
	}
}
