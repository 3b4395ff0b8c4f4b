package controller

import m "github.com/mouse-blink/dirdoc/internal/model"

// Message types.
type processingMsg struct {
	done  int
	total int
	rel   string
}

type writingMsg struct {
	output m.Path
}

// finishMsg is sent once the run's context is cancelled.
type finishMsg struct{}
