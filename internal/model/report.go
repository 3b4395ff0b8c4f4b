package model

// FileReport describes how a single candidate ended up in the document.
type FileReport struct {
	Rel        string
	Lines      int  // plain blocks emitted for the file
	Unreadable bool // content was replaced by the placeholder line
}

// Summary is the outcome of one generate run.
type Summary struct {
	Output  Path
	Written bool // false when no candidates were found
	Blocks  int
	Files   []FileReport
}

// Unreadable counts files that were substituted by the placeholder.
func (s Summary) Unreadable() int {
	n := 0

	for _, f := range s.Files {
		if f.Unreadable {
			n++
		}
	}

	return n
}
