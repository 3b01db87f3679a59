// Package tui renders a project's Gantt chart in the terminal. The chart
// geometry comes from internal/gantt with cell units: one column per day,
// one line per row.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/gantt"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

// hierarchyLoadedMsg carries the result of a hierarchy fetch.
type hierarchyLoadedMsg struct {
	hierarchy *view.Hierarchy
	err       error
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "collapse/expand")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the root bubbletea model for the Gantt viewer.
type Model struct {
	hierarchies service.HierarchyService
	projectID   string
	keys        keyMap

	hierarchy *view.Hierarchy
	collapsed map[string]bool
	layout    gantt.Layout
	cursor    int

	width   int
	height  int
	loading bool
	err     error

	// now is swappable in tests for a stable timeline.
	now func() time.Time
}

func NewModel(hierarchies service.HierarchyService, projectID string) Model {
	return Model{
		hierarchies: hierarchies,
		projectID:   projectID,
		keys:        defaultKeyMap(),
		collapsed:   make(map[string]bool),
		loading:     true,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadHierarchy()
}

func (m Model) loadHierarchy() tea.Cmd {
	svc, projectID := m.hierarchies, m.projectID
	return func() tea.Msg {
		h, err := svc.Hierarchy(context.Background(), projectID)
		return hierarchyLoadedMsg{hierarchy: h, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hierarchyLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.hierarchy = msg.hierarchy
			m.relayout()
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Terminal resize is the re-measure trigger: the visible chart
		// columns depend on the new width.
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.layout.Rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCursorRow()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadHierarchy()
		}
		return m, nil
	}
	return m, nil
}

// toggleCursorRow flips collapse on the row under the cursor and re-runs the
// layout, since hiding a branch changes both the row list and the timeline
// bounds.
func (m *Model) toggleCursorRow() {
	if m.cursor >= len(m.layout.Rows) {
		return
	}
	row := m.layout.Rows[m.cursor]
	if !row.HasChildren || row.Kind == gantt.KindTask {
		return
	}
	m.collapsed[row.NodeID] = !m.collapsed[row.NodeID]
	m.relayout()
}

func (m *Model) relayout() {
	if m.hierarchy == nil {
		return
	}
	m.layout = gantt.Compute(gantt.Input{
		Phases:    m.hierarchy.Phases,
		Collapsed: m.collapsed,
		Now:       m.now(),
	}, cellConfig())
	if m.cursor >= len(m.layout.Rows) && len(m.layout.Rows) > 0 {
		m.cursor = len(m.layout.Rows) - 1
	}
}

// cellConfig maps chart geometry onto terminal cells.
func cellConfig() gantt.Config {
	return gantt.Config{
		DayWidth:  1,
		RowHeight: 1,
		RowGap:    0,
		PadBefore: 3,
		PadAfter:  7,
	}
}
