package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 0, ""},
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 1, "…"},
		{"a/b/file.rs", 8, "…file.rs"},
		{"dir/文件.rs", 6, "…件.rs"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, truncateLeft(tt.text, tt.width), "truncateLeft(%q, %d)", tt.text, tt.width)
	}
}

func TestProgressModel_Processing(t *testing.T) {
	model := newProgressModel(80)
	assert.Contains(t, model.View(), "preparing")

	updated, cmd := model.Update(processingMsg{done: 1, total: 3, rel: "a/x.rs"})
	assert.Nil(t, cmd)

	pm := updated.(progressModel)
	assert.Equal(t, 1, pm.done)
	assert.Equal(t, 3, pm.total)
	assert.InDelta(t, 1.0/3.0, pm.percent(), 1e-9)

	view := pm.View()
	assert.Contains(t, view, "processing a/x.rs")
	assert.Contains(t, view, "1/3")
}

func TestProgressModel_WritingAndFinish(t *testing.T) {
	var model tea.Model = newProgressModel(80)

	model, _ = model.Update(processingMsg{done: 2, total: 3, rel: "c.rs"})
	model, _ = model.Update(writingMsg{output: "out.docx"})

	pm := model.(progressModel)
	assert.True(t, pm.writing)
	assert.Equal(t, 3, pm.done)
	assert.Contains(t, pm.View(), "writing out.docx")

	model, cmd := model.Update(finishMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	pm = model.(progressModel)
	assert.True(t, pm.finished)
	assert.Contains(t, pm.View(), "processed 3/3 files")
}

func TestProgressModel_Resize(t *testing.T) {
	var model tea.Model = newProgressModel(0)
	assert.Equal(t, defaultWidth, model.(progressModel).width)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, model.(progressModel).bar.Width)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 10, Height: 40})
	assert.Equal(t, minBarWidth, model.(progressModel).bar.Width)
}

func TestProgressModel_PercentWithoutTotal(t *testing.T) {
	pm := newProgressModel(80)

	assert.Zero(t, pm.percent())
	assert.True(t, strings.HasSuffix(pm.View(), "\n"))
}

func TestProgressModel_InitTicksSpinner(t *testing.T) {
	pm := newProgressModel(80)

	assert.NotNil(t, pm.Init())
}
