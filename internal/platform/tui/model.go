package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/export"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/storage"
)

// statusTTL is how long an export or screenshot message stays visible.
const statusTTL = 4 * time.Second

// Model is the Bubble Tea model for a running walk.
type Model struct {
	sim        registry.Simulation
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	state      core.SimState
	keys       *KeyMapper
	help       help.Model
	exportDir  string
	remote     bool // SSH session: files would land on the server

	started   time.Time
	startMode string
	saved     bool // current walk already recorded

	status    string
	statusErr bool
	statusAt  time.Time

	showHelp   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given simulation and starts
// its walk.
func NewModel(sim registry.Simulation, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sim.Reset(cfg)
	state := sim.State()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		state:      state,
		keys:       NewKeyMapper(),
		help:       h,
		started:    time.Now(),
		startMode:  state.Mode,
	}
}

// WithExportDir sets the directory PNG exports are written to.
func (m Model) WithExportDir(dir string) Model {
	m.exportDir = dir
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		// The walk keeps going; only the drawing area changes.
		m.sim.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun(time.Now())
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		m.saveRun(time.Now())
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionExport:
		m.exportPNG()
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	restart := m.inputFrame.Has(core.ActionRestart)
	if restart {
		m.saveRun(now)
	}

	result := m.sim.Step(m.inputFrame)
	m.state = result.State

	if restart {
		m.started = now
		m.startMode = m.state.Mode
		m.saved = false
	}

	if m.status != "" && now.Sub(m.statusAt) > statusTTL {
		m.status = ""
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current walk once. Walks that never left the seed
// are not recorded.
func (m *Model) saveRun(now time.Time) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true
	r := m.buildRun(now)
	if r.Steps <= 1 {
		return
	}
	//nolint:errcheck // Best-effort save, the walk continues regardless
	m.store.SaveRun(r)
}

// buildRun summarises the current walk as a run record.
func (m Model) buildRun(now time.Time) storage.Run {
	st := m.sim.State()
	r := storage.Run{
		Surface:   m.sim.ID(),
		StartMode: m.startMode,
		FinalMode: st.Mode,
		Seed:      st.Seed,
		Steps:     st.Steps,
		Capacity:  st.Capacity,
		Duration:  now.Sub(m.started),
	}
	if eng := m.sim.Engine(); eng != nil {
		sz := eng.Extent()
		pos := eng.Position()
		r.Width, r.Height = sz.W, sz.H
		r.FinalX, r.FinalY = pos.X, pos.Y
	}
	return r
}

// exportPNG writes the current path to a PNG and copies its location to
// the clipboard.
func (m *Model) exportPNG() {
	if m.remote {
		m.setStatus("export is not available over SSH", true)
		return
	}
	eng := m.sim.Engine()
	if eng == nil {
		return
	}

	dir := m.exportDir
	if dir == "" {
		d, err := export.DefaultDir()
		if err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		dir = d
	}

	path := filepath.Join(dir, export.Filename(m.sim.ID(), time.Now()))
	if err := export.SavePNG(eng, path, export.Options{}); err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	msg := "saved " + path
	if err := export.CopyPath(path); err == nil {
		msg += " (path copied)"
	}
	m.setStatus(msg, false)
}

// saveScreenshot saves the current screen as text.
func (m *Model) saveScreenshot() {
	if m.remote {
		return
	}
	m.screen.Clear()
	m.sim.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	dir := filepath.Join(home, ".randomwalk", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sim.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("saved "+path, false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
	m.statusAt = time.Now()
}

// footer is drawn over the bottom rows: full key help or the latest status.
func (m Model) footer() string {
	switch {
	case m.showHelp:
		return theme.Help.Render(m.help.View(m.keys.Keys()))
	case m.status != "":
		if m.statusErr {
			return theme.StatusError.Render(m.status)
		}
		return theme.StatusMessage.Render(m.status)
	}
	return ""
}

// View renders the current state to a string for display. The footer
// covers the bottom rows so the walk area does not change with it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != m.config.ScreenH {
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	m.screen.Clear()
	m.sim.Render(m.screen)

	out := RenderScreen(m.screen)
	if f := m.footer(); f != "" {
		lines := strings.Split(out, "\n")
		keep := max(len(lines)-lipgloss.Height(f), 0)
		out = strings.Join(append(lines[:keep], f), "\n")
	}
	return out
}

// State returns the status reported by the last frame.
func (m Model) State() core.SimState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run runs a walk until the user quits or asks for the menu.
// Returns true if the user wants to go back to the menu.
func Run(sim registry.Simulation, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(sim, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
