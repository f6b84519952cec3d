package tui

import (
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// progressModel shows a spinner and the latest status message of one
// running operation until its result arrives.
type progressModel struct {
	title   string
	spinner spinner.Model
	feed    statusFeed
	results <-chan models.Result

	status   string
	result   models.Result
	err      error
	done     bool
	quitting bool
}

func newProgressModel(title string, feed statusFeed, results <-chan models.Result) progressModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return progressModel{
		title:   title,
		spinner: s,
		feed:    feed,
		results: results,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.feed.next(), waitForResult(m.results))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case statusMsg:
		if msg.update.Message != "" {
			m.status = msg.update.Message
		}
		return m, m.feed.next()
	case resultMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	out := titleStyle.Render(m.title) + "\n\n"

	switch {
	case m.err != nil:
		out += errorStyle.Render(m.err.Error())
	case m.done && m.result.Success:
		out += successStyle.Render(m.result.Message)
	case m.done:
		out += errorStyle.Render(m.result.Message)
	default:
		out += m.spinner.View() + " " + m.status
	}

	if !m.done {
		out += "\n\n" + helpStyle.Render("q stop watching")
	}
	return appStyle.Render(out) + "\n"
}
