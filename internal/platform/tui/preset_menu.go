package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
)

var presetDescriptions = map[config.GeometryPreset]string{
	config.PresetStandard: "R 3, r 1",
	config.PresetThin:     "R 5, r 0.5",
	config.PresetSpindle:  "R 1, r 2, self-crossing",
	config.PresetFixed:    "radii from walk.yaml",
}

// PresetModel lets users choose the torus shape before a curved walk.
type PresetModel struct {
	presets   []config.GeometryPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.GeometryPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewPresetModel creates a new preset selection model.
func NewPresetModel(width, height int) PresetModel {
	return PresetModel{
		presets:   config.Presets(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.MenuTitle.Render(centerText("T O R U S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a shape:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-10s %s", p, presetDescriptions[p])
		style := theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + line[2:]
			style = theme.MenuItemActive
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.MenuDescription.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen preset, or "" while still choosing.
func (m PresetModel) Selected() config.GeometryPreset {
	if m.choosing {
		return ""
	}
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PresetModel) WantsBack() bool {
	return m.back
}

// RunPresetSelector runs the preset selection. An empty preset means the
// user backed out or quit.
func RunPresetSelector(cfg core.RuntimeConfig) (config.GeometryPreset, error) {
	model := NewPresetModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(PresetModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}

	return m.Selected(), nil
}
