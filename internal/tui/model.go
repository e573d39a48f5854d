// Package tui is the interactive terminal calendar.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/insight"
	"github.com/username/calendario/internal/view"
)

// insightMsg carries a finished insight fetch back into Update
type insightMsg struct {
	month   time.Month
	year    int
	insight insight.MonthlyInsight
}

// Model is the bubbletea model of the calendar
type Model struct {
	state   view.State
	builder *calendar.Builder
	fetcher *insight.Fetcher
	logger  *zap.Logger
	keys    keyMap
	styles  *Styles

	cursor time.Month // focused tile in year view

	insight    *insight.MonthlyInsight
	insightFor string
	pending    int // outstanding insight requests

	width  int
	height int
}

// New creates the calendar model. A nil fetcher always shows the fallback insight.
func New(builder *calendar.Builder, fetcher *insight.Fetcher, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetcher == nil {
		fetcher = insight.NewFetcher(nil, 0, logger)
	}

	return &Model{
		state:   view.New(),
		builder: builder,
		fetcher: fetcher,
		logger:  logger,
		keys:    defaultKeyMap(),
		styles:  NewStyles(),
		cursor:  time.January,
	}
}

// State returns the current navigation state
func (m *Model) State() view.State {
	return m.state
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Calendario 2026")
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case insightMsg:
		if m.pending > 0 {
			m.pending--
		}
		result := msg.insight
		m.insight = &result
		m.insightFor = calendar.MonthName(msg.month)
		m.logger.Debug("Insight received",
			zap.String("month", m.insightFor),
			zap.Int("year", msg.year))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state.HolidaysOpen {
		if key.Matches(msg, m.keys.Close) {
			m.state = m.state.CloseHolidays()
		}
		return m, nil
	}

	before := m.state
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.state = m.state.Prev()
	case key.Matches(msg, m.keys.Next):
		m.state = m.state.Next()
	case key.Matches(msg, m.keys.Today):
		m.state = m.state.Today(m.builder.Now())
	case key.Matches(msg, m.keys.MonthView):
		m.state = m.state.SetMode(view.ModeMonth)
	case key.Matches(msg, m.keys.YearView):
		m.state = m.state.SetMode(view.ModeYear)
	case key.Matches(msg, m.keys.Toggle):
		m.state = m.state.Toggle()
	case key.Matches(msg, m.keys.Holidays):
		m.state = m.state.OpenHolidays()
	case key.Matches(msg, m.keys.Insight):
		cmd = m.requestInsight()
	case m.state.Mode == view.ModeYear && key.Matches(msg, m.keys.CursorNext):
		m.cursor = wrapMonth(m.cursor + 1)
	case m.state.Mode == view.ModeYear && key.Matches(msg, m.keys.CursorPrev):
		m.cursor = wrapMonth(m.cursor - 1)
	case m.state.Mode == view.ModeYear && key.Matches(msg, m.keys.SelectMonth):
		m.state = m.state.SelectMonth(m.cursor)
	}

	if m.state.Mode == view.ModeYear && before.Mode == view.ModeMonth {
		m.cursor = m.state.Month()
	}
	if m.state != before {
		m.logger.Debug("View changed",
			zap.String("mode", m.state.Mode.String()),
			zap.String("title", m.state.Title()))
	}

	return m, cmd
}

// requestInsight fetches the insight for the displayed month; every call is an independent request
func (m *Model) requestInsight() tea.Cmd {
	m.pending++
	month, year := m.state.Month(), m.state.Year()
	fetcher := m.fetcher

	return func() tea.Msg {
		result := fetcher.Fetch(context.Background(), calendar.MonthName(month), year)
		return insightMsg{month: month, year: year, insight: result}
	}
}

// Loading reports whether an insight request is outstanding
func (m *Model) Loading() bool {
	return m.pending > 0
}

func wrapMonth(month time.Month) time.Month {
	return time.Date(calendar.ReferenceYear, month, 1, 0, 0, 0, 0, time.UTC).Month()
}
