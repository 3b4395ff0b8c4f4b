package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minBarWidth = 20
	maxBarWidth = 60
)

// progressModel shows the file being processed above a progress bar, then a
// spinner while the document is written.
type progressModel struct {
	spinner  spinner.Model
	bar      progress.Model
	width    int
	total    int
	done     int
	current  string
	output   string
	writing  bool
	finished bool
}

func newProgressModel(width int) progressModel {
	model := progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(accentStyle),
		),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
	}

	return model.resize(width)
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width), nil

	case processingMsg:
		pm.total = msg.total
		pm.done = msg.done
		pm.current = msg.rel

		return pm, nil

	case writingMsg:
		pm.done = pm.total
		pm.writing = true
		pm.output = string(msg.output)

		return pm, nil

	case finishMsg:
		pm.finished = true
		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.finished {
		return fmt.Sprintf("%s processed %d/%d files\n", accentStyle.Render("✓"), pm.done, pm.total)
	}

	var status string

	switch {
	case pm.writing:
		status = fmt.Sprintf("%s writing %s…", pm.spinner.View(), pm.output)
	case pm.current != "":
		status = fmt.Sprintf("%s processing %s", pm.spinner.View(), truncateLeft(pm.current, pm.width-14))
	default:
		status = fmt.Sprintf("%s preparing…", pm.spinner.View())
	}

	counter := mutedStyle.Render(fmt.Sprintf(" %d/%d", pm.done, pm.total))

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		pm.bar.ViewAs(pm.percent())+counter,
	) + "\n"
}

func (pm progressModel) percent() float64 {
	if pm.total <= 0 {
		return 0
	}

	return float64(pm.done) / float64(pm.total)
}

func (pm progressModel) resize(width int) progressModel {
	if width <= 0 {
		width = defaultWidth
	}

	pm.width = width

	barWidth := width - 12
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}

	pm.bar.Width = barWidth

	return pm
}

// truncateLeft shortens text to width cells, keeping the end of a path,
// which is the part that identifies the file.
func truncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	runes := []rune(text)
	currentWidth := 0
	start := len(runes)

	for i := len(runes) - 1; i >= 0; i-- {
		rWidth := lipgloss.Width(string(runes[i]))
		if currentWidth+rWidth > maxWidth {
			break
		}

		currentWidth += rWidth
		start = i
	}

	return ellipsis + string(runes[start:])
}
