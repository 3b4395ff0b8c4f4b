package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mouse-blink/dirdoc/internal/adapter"
	m "github.com/mouse-blink/dirdoc/internal/model"
	"go.uber.org/zap"
)

const placeholderFormat = "unable to read file: %s"

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Placeholder is the text that stands in for a file that could not be read.
func Placeholder(path m.Path) string {
	return fmt.Sprintf(placeholderFormat, path)
}

// ContentLoader reads candidate files as UTF-8 text.
type ContentLoader struct {
	fs     adapter.SourceFSAdapter
	logger *zap.Logger
}

// NewContentLoader creates a loader backed by fs. A nil logger discards warnings.
func NewContentLoader(fs adapter.SourceFSAdapter, logger *zap.Logger) *ContentLoader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ContentLoader{fs: fs, logger: logger}
}

// Load returns the file text and true, or the placeholder and false when the
// file cannot be read or is not valid UTF-8. It never fails.
func (l *ContentLoader) Load(entry m.FileEntry) (string, bool) {
	data, err := l.fs.ReadFile(entry.Path)
	if err == nil && !utf8.Valid(data) {
		err = errInvalidUTF8
	}

	if err != nil {
		l.logger.Warn("substituting placeholder",
			zap.String("path", string(entry.Path)),
			zap.Error(fmt.Errorf("%w: %w", ErrUnreadableFile, err)),
		)

		return Placeholder(entry.Path), false
	}

	return string(data), true
}
