package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-maze/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 40  // Below this the date column is dropped
	maxScores     = 100 // Max scores to load
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	Stats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID   string
	title    string
	source   ScoreSource
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	withDate bool // Whether the table has a date column
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model for one game.
func NewScoreboardModel(source ScoreSource, gameID, title string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with columns sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
	}

	tableWidth := m.width - 4 // Margins
	m.withDate = tableWidth >= tableMinWidth
	if m.withDate {
		dateW := min(tableWidth-22, 20)
		columns[1].Width = 12
		columns = append(columns, table.Column{Title: "Date", Width: dateW})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads the top runs and the aggregate stats.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	scores, err := m.source.TopScores(m.gameID, maxScores)
	if err != nil {
		m.loadErr = err
	} else {
		m.scores = scores
	}

	stats, err := m.source.Stats(m.gameID)
	if err == nil {
		m.stats = stats
	} else if m.loadErr == nil {
		m.loadErr = err
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
		}
		if m.withDate {
			row = append(row, s.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("HIGH SCORES - %s", m.title), m.width)))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the aggregate stats.
func (m ScoreboardModel) statsLine() string {
	if m.loadErr != nil {
		return fmt.Sprintf("could not load scores: %v", m.loadErr)
	}
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("runs %d  best %d  avg %.0f  last %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// IsQuitting returns true once the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source ScoreSource, gameID, title string, width, height int) error {
	model := NewScoreboardModel(source, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
