package controller_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/dirdoc/internal/adapter"
	"github.com/mouse-blink/dirdoc/internal/controller"
	"github.com/mouse-blink/dirdoc/internal/domain"
	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestTUIWithWorkflow drives a real generate run through the Bubble Tea
// reporter and checks that it shuts down once the document is written.
func TestTUIWithWorkflow(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.rs"), []byte("fn a() {}\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.rs"), []byte("fn b() {}\n"), 0o600))

	output := filepath.Join(t.TempDir(), "out.docx")

	var buf bytes.Buffer

	wf := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewDocumentStore(),
		controller.NewTUI(&buf),
		zaptest.NewLogger(t),
	)

	err := wf.Generate(domain.GenerateArgs{
		ListArgs: domain.ListArgs{
			Root:       m.Path(root),
			Extensions: m.ParseExtensions([]string{"rs"}),
		},
		Output: m.Path(output),
	})
	require.NoError(t, err)

	rendered := buf.String()
	assert.Contains(t, rendered, "processed 2/2 files")
	assert.Contains(t, rendered, "Document written:")
	assert.Contains(t, rendered, output)
	assert.FileExists(t, output)
}
