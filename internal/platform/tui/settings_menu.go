package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-arcade/internal/config"
)

// settingRow is one adjustable line of the settings screen.
type settingRow struct {
	label  string
	value  func(c *config.Config) string
	adjust func(c *config.Config, delta int)
}

// presetChoices starts with "custom" so a preset can be cleared.
var presetChoices = append([]config.Preset{""}, config.Presets()...)

func clampStep(v, delta, lo, hi int) int {
	return min(hi, max(lo, v+delta))
}

// custom marks hand-tuned values so the preset does not override them on load.
func custom(c *config.Config) { c.Preset = "" }

var settingRows = []settingRow{
	{
		label: "Difficulty",
		value: func(c *config.Config) string {
			if c.Preset == "" {
				return "custom"
			}
			return c.Preset
		},
		adjust: func(c *config.Config, delta int) {
			i := 0
			for j, p := range presetChoices {
				if string(p) == c.Preset {
					i = j
				}
			}
			i = (i + delta + len(presetChoices)) % len(presetChoices)
			if presetChoices[i] == "" {
				custom(c)
				return
			}
			config.ApplyPreset(c, presetChoices[i])
		},
	},
	{
		label: "Sum Grid target",
		value: func(c *config.Config) string { return fmt.Sprint(c.SumGrid.Target) },
		adjust: func(c *config.Config, delta int) {
			c.SumGrid.Target = clampStep(c.SumGrid.Target, delta, config.MinSumTarget, config.MaxSumTarget)
			custom(c)
		},
	},
	{
		label: "Sum Grid size",
		value: func(c *config.Config) string {
			return fmt.Sprintf("%dx%d", c.SumGrid.GridSize, c.SumGrid.GridSize)
		},
		adjust: func(c *config.Config, delta int) {
			c.SumGrid.GridSize = clampStep(c.SumGrid.GridSize, delta, config.MinGridSize, config.MaxGridSize)
			custom(c)
		},
	},
	{
		label: "Sum Grid timer",
		value: func(c *config.Config) string { return fmt.Sprintf("%d min", c.SumGrid.TimerMinutes) },
		adjust: func(c *config.Config, delta int) {
			c.SumGrid.TimerMinutes = clampStep(c.SumGrid.TimerMinutes, delta, config.MinTimerMinutes, config.MaxTimerMinutes)
			custom(c)
		},
	},
	{
		label: "Reuse paths",
		value: func(c *config.Config) string {
			if c.SumGrid.ReuseExistingPath {
				return "on"
			}
			return "off"
		},
		adjust: func(c *config.Config, _ int) {
			c.SumGrid.ReuseExistingPath = !c.SumGrid.ReuseExistingPath
		},
	},
	{
		label: "Bonds lowest target",
		value: func(c *config.Config) string { return fmt.Sprint(c.NumberBonds.MinTarget) },
		adjust: func(c *config.Config, delta int) {
			c.NumberBonds.MinTarget = clampStep(c.NumberBonds.MinTarget, delta, config.MinBondTarget, config.MaxBondTarget-1)
			if c.NumberBonds.MaxTarget <= c.NumberBonds.MinTarget {
				c.NumberBonds.MaxTarget = c.NumberBonds.MinTarget + 1
			}
			custom(c)
		},
	},
	{
		label: "Bonds highest target",
		value: func(c *config.Config) string { return fmt.Sprint(c.NumberBonds.MaxTarget) },
		adjust: func(c *config.Config, delta int) {
			c.NumberBonds.MaxTarget = clampStep(c.NumberBonds.MaxTarget, delta, config.MinBondTarget+1, config.MaxBondTarget)
			if c.NumberBonds.MinTarget >= c.NumberBonds.MaxTarget {
				c.NumberBonds.MinTarget = c.NumberBonds.MaxTarget - 1
			}
			custom(c)
		},
	},
	{
		label: "Dot card show time",
		value: func(c *config.Config) string { return fmt.Sprintf("%d s", c.DotCards.ShowSeconds) },
		adjust: func(c *config.Config, delta int) {
			c.DotCards.ShowSeconds = clampStep(c.DotCards.ShowSeconds, delta, config.MinShowSeconds, config.MaxShowSeconds)
		},
	},
	{
		label: "Cover Up frame",
		value: func(c *config.Config) string { return fmt.Sprint(c.CoverUp.FrameSize) },
		adjust: func(c *config.Config, delta int) {
			c.CoverUp.FrameSize = clampStep(c.CoverUp.FrameSize, delta, config.MinFrameSize, config.MaxFrameSize)
		},
	},
}

var (
	settingsLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	settingsPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	settingsErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SettingsModel edits a copy of the settings. Enter saves them to path
// and makes them active; back leaves everything unchanged.
type SettingsModel struct {
	draft     config.Config
	path      string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	errMsg    string
	applied   bool
	back      bool
	quitting  bool
}

// NewSettingsModel creates a settings screen starting from cfg.
func NewSettingsModel(cfg config.Config, path string, width, height int) SettingsModel {
	return SettingsModel{
		draft:     cfg,
		path:      path,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(settingRows)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		settingRows[m.cursor].adjust(&m.draft, -1)
		m.errMsg = ""
	case MenuActionRight:
		settingRows[m.cursor].adjust(&m.draft, 1)
		m.errMsg = ""
	case MenuActionSelect:
		if err := m.apply(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.applied = true
		return m, tea.Quit
	}
	return m, nil
}

// apply validates the draft, writes it when a path is set and makes it
// the active settings.
func (m SettingsModel) apply() error {
	if err := m.draft.Validate(); err != nil {
		return err
	}
	if m.path != "" {
		if err := config.Save(m.path, m.draft); err != nil {
			return err
		}
	}
	config.UseConfig(&m.draft)
	return nil
}

// View renders the settings list.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	for i, row := range settingRows {
		line := fmt.Sprintf("  %-22s %10s  ", row.label, row.value(&m.draft))
		style := settingsLabelStyle
		if i == m.cursor {
			line = fmt.Sprintf("> %-22s < %8s >", row.label, row.value(&m.draft))
			style = settingsPickStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(centerText(settingsErrStyle.Render(m.errMsg), m.width))
		b.WriteString("\n")
	}
	if m.path != "" {
		b.WriteString(centerText(menuDescStyle.Render("Saved to "+m.path), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText("Up/Down: Choose  |  Left/Right: Change  |  Enter: Save  |  Esc: Cancel", m.width))
	b.WriteString("\n")

	return b.String()
}

// Draft returns the edited settings.
func (m SettingsModel) Draft() config.Config {
	return m.draft
}

// Applied reports whether the settings were saved.
func (m SettingsModel) Applied() bool {
	return m.applied
}

// IsQuitting returns true if user requested to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// RunSettings shows the settings screen. It returns false if the user
// quit the program from it.
func RunSettings(cfg config.Config, path string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewSettingsModel(cfg, path, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return false, nil
	}
	return !m.IsQuitting(), nil
}
