package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/metrics"
	"github.com/vovakirdan/math-arcade/internal/registry"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

// Model is the Bubble Tea model for running one game. It maps keys to
// actions, drives the fixed tick loop and records finished rounds.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	embedded   bool // Running inside a SessionModel; Back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. Saved deck
// weights for player are loaded before the first round.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.loadWeights()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveWeights()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.saveWeights()
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordRound()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		// Some games start a new round on their own
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRound stores a finished round. Rounds with no answers are skipped.
func (m *Model) recordRound() {
	if m.gameState.Score == 0 && m.gameState.Attempts == 0 {
		return
	}
	metrics.Default().ObserveRound(m.game.ID(), m.gameState.Score)

	if m.store == nil {
		return
	}
	entry := storage.ScoreEntry{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		Attempts: m.gameState.Attempts,
	}
	if k, ok := m.game.(registry.SettingsKeyer); ok {
		entry.SettingsKey = k.SettingsKey()
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		log.Warn("could not save score", "game", entry.GameID, "error", err)
	}
}

func (m *Model) loadWeights() {
	deck, ok := m.game.(registry.WeightedDeck)
	if !ok || m.store == nil {
		return
	}
	w, err := m.store.LoadWeights(m.player)
	if err != nil {
		log.Warn("could not load card weights", "player", m.player, "error", err)
		return
	}
	if len(w) > 0 {
		deck.SetWeights(w)
	}
}

func (m *Model) saveWeights() {
	deck, ok := m.game.(registry.WeightedDeck)
	if !ok || m.store == nil {
		return
	}
	if err := m.store.SaveWeights(m.player, deck.Weights()); err != nil {
		log.Warn("could not save card weights", "player", m.player, "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mathcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game. quit reports
// whether the player asked to leave the arcade rather than go back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (quit bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, player),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}
	m, ok := finalModel.(Model)
	return !ok || m.IsQuitting(), nil
}
