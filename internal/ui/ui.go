package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/statx/internal/metrics"
)

// ViewState enumerates the TUI's screens.
type ViewState int

const (
	TracklistView ViewState = iota
	ConfirmView
	FetchView
	ResultView
)

// Model is the root bubbletea model driving the fetch workflow.
type Model struct {
	ctx     context.Context
	fetcher *metrics.Fetcher
	queries []metrics.Query

	view       ViewState
	trackList  list.Model
	resultList list.Model
	progress   chan metrics.ProgressUpdate
	current    metrics.ProgressUpdate
	records    []metrics.Record
	summary    metrics.Summary
	err        error

	keys   keyMap
	help   help.Model
	width  int
	height int
}

func NewModel(ctx context.Context, fetcher *metrics.Fetcher, queries []metrics.Query) Model {
	return Model{
		ctx:       ctx,
		fetcher:   fetcher,
		queries:   queries,
		view:      TracklistView,
		trackList: newQueryList(queries),
		keys:      newKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// startFetch runs the batch in a goroutine-backed command and closes the
// progress channel when the fetcher returns.
func (m Model) startFetch() tea.Cmd {
	ctx, fetcher, queries, progress := m.ctx, m.fetcher, m.queries, m.progress
	return func() tea.Msg {
		records := fetcher.FetchAll(ctx, queries, progress)
		close(progress)
		if err := ctx.Err(); err != nil {
			return fetchErrorMsg(err)
		}
		return fetchDoneMsg(records)
	}
}

// waitForProgress blocks on the next progress update. A closed channel ends
// the polling loop; the completion message arrives separately.
func (m Model) waitForProgress() tea.Cmd {
	progress := m.progress
	return func() tea.Msg {
		update, ok := <-progress
		if !ok {
			return nil
		}
		return progressMsg(update)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		m.resultList.SetSize(msg.Width-4, msg.Height-8)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case Msg:
		return m.handleMsg(msg)
	}

	return m.delegate(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if m.view == TracklistView && len(m.queries) > 0 {
			m.view = ConfirmView
			return m, nil
		}
	case key.Matches(msg, m.keys.yes):
		if m.view == ConfirmView {
			m.view = FetchView
			m.progress = make(chan metrics.ProgressUpdate, len(m.queries)*2+1)
			return m, tea.Batch(m.startFetch(), m.waitForProgress())
		}
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		if m.view == ConfirmView {
			m.view = TracklistView
			return m, nil
		}
	case key.Matches(msg, m.keys.restart):
		if m.view == ResultView {
			m.view = TracklistView
			m.records = nil
			m.err = nil
			return m, nil
		}
	}

	return m.delegate(msg)
}

func (m Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgProgress:
		m.current = msg.update
		return m, m.waitForProgress()
	case MsgFetchDone:
		m.records = msg.records
		m.summary = metrics.Summarize(msg.records)
		m.resultList = newRecordList(msg.records)
		m.resultList.SetSize(m.width-4, m.height-8)
		m.view = ResultView
		return m, nil
	case MsgFetchError:
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}
	return m, nil
}

// delegate forwards unhandled messages to whichever list is on screen.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case TracklistView:
		m.trackList, cmd = m.trackList.Update(msg)
	case ResultView:
		m.resultList, cmd = m.resultList.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	switch m.view {
	case TracklistView:
		b.WriteString(styles.title.Render("Streaming metrics"))
		b.WriteString("\n")
		b.WriteString(m.trackList.View())
		b.WriteString("\n")
		b.WriteString(styles.help.Render("enter: fetch · q: quit"))
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	case ConfirmView:
		b.WriteString(styles.title.Render("Confirm"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Fetch metrics for %d track(s)?\n\n", len(m.queries)))
		b.WriteString(styles.help.Render("y: yes · n: back"))
	case FetchView:
		b.WriteString(styles.title.Render("Fetching"))
		b.WriteString("\n")
		if m.current.Total > 0 {
			b.WriteString(fmt.Sprintf("[%d/%d] %s\n", m.current.Step, m.current.Total, m.current.Message))
		} else {
			b.WriteString("Starting...\n")
		}
	case ResultView:
		b.WriteString(styles.title.Render("Results"))
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		} else {
			b.WriteString(fmt.Sprintf(
				"%s  %s\n",
				styles.ok.Render(fmt.Sprintf("Spotify %d/%d", m.summary.SpotifyHits, m.summary.Total)),
				styles.ok.Render(fmt.Sprintf("YouTube Music %d/%d", m.summary.YouTubeHits, m.summary.Total)),
			))
			b.WriteString(m.resultList.View())
			b.WriteString("\n")
		}
		b.WriteString(styles.help.Render("r: restart · q: quit"))
	}

	return b.String()
}
