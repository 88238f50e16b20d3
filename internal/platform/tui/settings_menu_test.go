package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-arcade/internal/config"
)

func TestSettingRowsStayValid(t *testing.T) {
	for _, delta := range []int{-1, 1} {
		cfg := config.Default()
		for i, row := range settingRows {
			for range 120 {
				row.adjust(&cfg, delta)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("row %d (%s) pushed %+d leaves invalid settings: %v", i, row.label, delta, err)
			}
		}
	}
}

func TestSettingsManualChangeClearsPreset(t *testing.T) {
	cfg := config.Default()
	settingRows[0].adjust(&cfg, 1) // custom -> easy
	if cfg.Preset != string(config.PresetEasy) || cfg.SumGrid.Target != 5 {
		t.Fatalf("preset row gave %+v", cfg)
	}

	settingRows[1].adjust(&cfg, 1)
	if cfg.Preset != "" || cfg.SumGrid.Target != 6 {
		t.Errorf("manual target change should drop the preset, got %q target %d", cfg.Preset, cfg.SumGrid.Target)
	}
}

func TestSettingsModelSaves(t *testing.T) {
	t.Cleanup(func() { config.UseConfig(nil) })

	path := filepath.Join(t.TempDir(), "config.yaml")
	m := NewSettingsModel(config.Default(), path, 80, 24)

	// Down to the sum grid target and raise it twice
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyDown},
		{Type: tea.KeyRight},
		{Type: tea.KeyRight},
		{Type: tea.KeyEnter},
	} {
		next, _ := m.Update(msg)
		m = next.(SettingsModel)
	}

	if !m.Applied() {
		t.Fatal("enter should apply the settings")
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SumGrid.Target != 11 {
		t.Errorf("saved target = %d, expected 11", loaded.SumGrid.Target)
	}
	if got := config.Active().SumGrid.Target; got != 11 {
		t.Errorf("active target = %d, expected 11", got)
	}
}

func TestSettingsModelBackDiscards(t *testing.T) {
	m := NewSettingsModel(config.Default(), "", 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.(SettingsModel).Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SettingsModel)
	if m.Applied() || m.IsQuitting() {
		t.Error("back should neither apply nor quit")
	}
}
