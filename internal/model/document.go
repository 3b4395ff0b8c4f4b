// Package model defines the data structures shared by the dirdoc layers.
package model

// BlockKind identifies the role of a Block inside a Document.
type BlockKind string

const (
	// BlockHeading is the bold "File: <rel>" line that opens a file section.
	BlockHeading BlockKind = "heading"
	// BlockLine is one line of file content.
	BlockLine BlockKind = "line"
	// BlockSeparator is the empty paragraph closing a file section.
	BlockSeparator BlockKind = "separator"
)

// Block is one paragraph of the generated document.
type Block struct {
	Kind BlockKind
	Text string
}

// Bold reports whether the block is rendered in bold.
func (b Block) Bold() bool {
	return b.Kind == BlockHeading
}

// Document is the ordered sequence of blocks for a whole run.
type Document struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (d Document) Len() int {
	return len(d.Blocks)
}

// Headings returns the text of every heading block, in order.
func (d Document) Headings() []string {
	var out []string

	for _, b := range d.Blocks {
		if b.Kind == BlockHeading {
			out = append(out, b.Text)
		}
	}

	return out
}
