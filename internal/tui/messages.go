package tui

import (
	"github.com/MKhiriev/go-mod-manager/models"
	tea "github.com/charmbracelet/bubbletea"
)

type statusMsg struct {
	update models.StatusUpdate
}

type resultMsg struct {
	result models.Result
	err    error
}

type catalogChangedMsg struct {
	err error
}

// updateBuffer is the number of status updates kept while the program is
// busy rendering. Older updates are dropped once it is full.
const updateBuffer = 64

// statusFeed turns published status updates into a channel the program
// reads from. Publishers never block on it.
type statusFeed chan models.StatusUpdate

func newStatusFeed() statusFeed {
	return make(statusFeed, updateBuffer)
}

func (f statusFeed) listen(update models.StatusUpdate) {
	select {
	case f <- update:
	default:
	}
}

func (f statusFeed) next() tea.Cmd {
	return func() tea.Msg {
		return statusMsg{update: <-f}
	}
}

func waitForResult(results <-chan models.Result) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-results
		if !ok {
			return resultMsg{err: errNoResult}
		}
		return resultMsg{result: result}
	}
}
