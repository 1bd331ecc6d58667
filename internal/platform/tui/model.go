package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-maze/internal/core"
)

// ScoreSaver records finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          core.Game
	screen        *core.Screen
	scores        ScoreSaver
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keyMapper     *KeyMapper
	screenshotDir string
	quitting      bool
	scoreSaved    bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// scores may be nil, in which case finished runs are not recorded.
func NewModel(game core.Game, scores ScoreSaver, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:        scores,
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keyMapper:     NewKeyMapper(),
		screenshotDir: defaultScreenshotDir(),
	}
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
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// it is drawn centered in whatever space is available.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.scores != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.scores.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "neonmaze-screenshots")
	}
	return filepath.Join(home, ".neonmaze", "screenshots")
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	return path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, scores ScoreSaver, cfg core.RuntimeConfig) error {
	model := NewModel(game, scores, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
