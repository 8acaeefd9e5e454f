package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/storage"
)

// Run history layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show surface list sidebar
	sidebarWidth       = 20
	maxRuns            = 100
)

// RunsKeyMap defines the key bindings for the run history.
type RunsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSurface key.Binding
	PrevSurface key.Binding
	Clear       key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSurface, k.PrevSurface, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSurface, k.PrevSurface},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSurface: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next surface"),
		),
		PrevSurface: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev surface"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear surface"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	surfaces    []registry.SimInfo
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	longest     int
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRunsModel creates a new run history model.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		surfaces:    registry.List(),
		store:       store,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.surfaces) > 0 {
		m.loadRuns()
	}

	return m
}

// createTable creates a table sized to the current window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Steps", Width: 11},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = theme.TableHeader
	s.Selected = theme.TableActive
	t.SetStyles(s)

	return t
}

// surface returns the ID of the selected surface.
func (m RunsModel) surface() string {
	if len(m.surfaces) == 0 {
		return ""
	}
	return m.surfaces[m.cursor].ID
}

// loadRuns loads the history of the selected surface.
func (m *RunsModel) loadRuns() {
	m.runs, m.longest, m.loadErr = nil, 0, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.RecentRuns(m.surface(), maxRuns)
		if m.loadErr == nil {
			m.longest, m.loadErr = m.store.LongestRun(m.surface())
		}
	}
	m.updateTableRows(time.Now())
}

// updateTableRows fills the table from the loaded runs.
func (m *RunsModel) updateTableRows(now time.Time) {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(i, r, now)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runRow(i int, r storage.Run, now time.Time) table.Row {
	steps := humanize.Comma(int64(r.Steps))
	if r.Steps >= r.Capacity && r.Capacity > 0 {
		steps += "*"
	}
	return table.Row{
		fmt.Sprintf("%d", i+1),
		steps,
		r.StartMode,
		r.FinalMode,
		r.Duration.Round(time.Second).String(),
		humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
	}
}

// Init initializes the run history model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSurface):
			if len(m.surfaces) > 0 {
				m.cursor = (m.cursor + 1) % len(m.surfaces)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSurface):
			if len(m.surfaces) > 0 {
				m.cursor = (m.cursor - 1 + len(m.surfaces)) % len(m.surfaces)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil && len(m.surfaces) > 0 {
				m.loadErr = m.store.ClearRuns(m.surface())
				if m.loadErr == nil {
					m.loadRuns()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows(time.Now())
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if len(m.surfaces) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %s", m.surfaces[m.cursor].Title)
	}
	b.WriteString(theme.MenuTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.longest > 0 {
		b.WriteString(theme.MenuDescription.Render(
			fmt.Sprintf("Longest walk: %s steps", humanize.Comma(int64(m.longest)))))
		b.WriteString("\n")
	}
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the history with a sidebar listing surfaces.
func (m RunsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Surfaces\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.surfaces {
		if i == m.cursor {
			sidebar.WriteString(theme.MenuItemActive.Render("> " + s.Title))
		} else {
			sidebar.WriteString(theme.MenuItemNormal.Render("  " + s.Title))
		}
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		theme.TableBorder.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders surface tabs above the table.
func (m RunsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(m.surfaces))
	for i, s := range m.surfaces {
		if i == m.cursor {
			tabs[i] = theme.TableActive.Padding(0, 1).Render(s.Title)
		} else {
			tabs[i] = theme.MenuDescription.Render(" " + s.Title + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.surfaces) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.surfaces[m.cursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(theme.TableBorder.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m RunsModel) renderTableContent() string {
	switch {
	case m.loadErr != nil:
		return theme.StatusError.Render(m.loadErr.Error())
	case m.store == nil:
		return theme.EmptyMessage.Render("Run history is unavailable.\nThe database could not be opened.")
	case len(m.runs) == 0:
		return theme.EmptyMessage.Render("No walks recorded yet.\nWalks are saved on restart and quit.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the run history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRunsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
