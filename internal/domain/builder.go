package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/dirdoc/internal/model"
)

const headingPrefix = "File: "

// DocumentBuilder accumulates blocks in the order files are processed.
// Every file is written as BeginFile, AppendLines, EndFile.
type DocumentBuilder struct {
	blocks []m.Block
	open   string
	inFile bool
}

// NewDocumentBuilder returns an empty builder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// BeginFile opens a file section with the bold "File: <rel>" heading.
func (b *DocumentBuilder) BeginFile(rel string) error {
	if b.inFile {
		return fmt.Errorf("%w: %s opened while %s is still open", ErrBuilderState, rel, b.open)
	}

	b.blocks = append(b.blocks, m.Block{Kind: m.BlockHeading, Text: headingPrefix + rel})
	b.open = rel
	b.inFile = true

	return nil
}

// AppendLines adds one line block per line of content and returns how many
// were added. Empty and whitespace-only lines are kept as they are.
func (b *DocumentBuilder) AppendLines(content string) (int, error) {
	if !b.inFile {
		return 0, fmt.Errorf("%w: lines appended outside a file section", ErrBuilderState)
	}

	lines := SplitLines(content)
	for _, line := range lines {
		b.blocks = append(b.blocks, m.Block{Kind: m.BlockLine, Text: line})
	}

	return len(lines), nil
}

// EndFile closes the current section with a blank separator.
func (b *DocumentBuilder) EndFile() error {
	if !b.inFile {
		return fmt.Errorf("%w: no file section to end", ErrBuilderState)
	}

	b.blocks = append(b.blocks, m.Block{Kind: m.BlockSeparator})
	b.open = ""
	b.inFile = false

	return nil
}

// Build hands over the accumulated document and resets the builder.
func (b *DocumentBuilder) Build() (m.Document, error) {
	if b.inFile {
		return m.Document{}, fmt.Errorf("%w: %s was never ended", ErrBuilderState, b.open)
	}

	doc := m.Document{Blocks: b.blocks}
	b.blocks = nil

	return doc, nil
}

// SplitLines splits content on "\n", dropping one "\r" before each newline.
// A trailing newline does not start another line, so "a\nb\n" has two lines
// and "" has none.
func SplitLines(content string) []string {
	var lines []string

	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}

		lines = append(lines, strings.TrimSuffix(content[:i], "\r"))
		content = content[i+1:]
	}

	return lines
}
