package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options carries the optional collaborators of a session.
// Every field may be left zero.
type Options struct {
	Player string
	Seed   int64
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game    registry.Game
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	screen  *core.Screen
	queue   *core.InputQueue
	keys    KeyMap
	help    help.Model

	store   *storage.Store
	sound   *audio.SoundManager
	logger  *log.Logger
	player  string
	best    int
	leaders []storage.ScoreEntry

	state    core.GameState
	width    int
	height   int
	quitting bool
}

// NewModel creates a session model and cold-starts the game.
func NewModel(game registry.Game, cfg config.SnakeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = storage.DefaultPlayer
	}

	w, h := cfg.ScreenSize()
	m := Model{
		game: game,
		cfg:  cfg,
		runtime: core.RuntimeConfig{
			TickInterval: cfg.TickInterval(),
			Seed:         opts.Seed,
		},
		screen: core.NewScreen(w, h),
		queue:  core.NewInputQueue(core.DefaultQueueSize),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		store:  opts.Store,
		sound:  opts.Sound,
		logger: logger,
		player: player,
	}

	m.refreshLeaders()
	m.game.Reset(m.runtime, m.screen)
	m.state = m.game.State()
	m.drawBest()

	m.logger.Debug("session started", "game", game.ID(), "player", player, "seed", opts.Seed)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the command for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		return m, nil
	}
	if !m.queue.Push(cmd) && cmd == core.CommandQuit {
		// Quit must never be lost to a full queue
		m.queue.Clear()
		m.queue.Push(cmd)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.queue.PollCommand(), m.screen)
	m.state = res.State

	if m.sound != nil {
		m.sound.Handle(res.Events)
	}
	for _, ev := range res.Events {
		switch ev {
		case core.EventCrashed, core.EventBoardFull:
			m.recordRound(ev)
		case core.EventRestarted:
			m.logger.Debug("round restarted", "game", m.game.ID(), "player", m.player)
		}
	}
	m.drawBest()

	if res.State.Exiting() {
		m.quitting = true
		m.logger.Info("session ended", "game", m.game.ID(), "player", m.player, "score", res.State.Score)
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickInterval)
}

// recordRound saves the final score of a round to the session leaderboard.
func (m *Model) recordRound(reason core.Event) {
	score := int(m.state.Score)
	m.logger.Info("round ended", "game", m.game.ID(), "player", m.player, "score", score, "reason", reason)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score, reason.String()); err != nil {
		m.logger.Warn("could not record score", "error", err)
		return
	}
	m.refreshLeaders()
}

func (m *Model) refreshLeaders() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read session best", "error", err)
		return
	}
	m.best = best

	leaders, err := m.store.TopScores(m.game.ID(), leaderboardSize)
	if err != nil {
		m.logger.Warn("could not read leaderboard", "error", err)
		return
	}
	m.leaders = leaders
}

// drawBest writes the session best on the HUD row below the score.
func (m *Model) drawBest() {
	if m.store == nil {
		return
	}
	m.screen.DrawText(m.cfg.Board.Height+3, 2, fmt.Sprintf("Best:  %-6d", m.best))
}

// tooSmall reports whether the terminal cannot fit the board and help line.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		// No size reported yet
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+1, m.width, m.height,
		))
	}

	board := RenderScreen(m.screen)
	if m.state.GameOver() && m.store != nil {
		side := leaderboardView(m.game.Title(), m.leaders)
		if m.width == 0 || m.width >= m.screen.Width()+leaderboardGap+lipgloss.Width(side) {
			board = lipgloss.JoinHorizontal(lipgloss.Top,
				board,
				lipgloss.NewStyle().PaddingLeft(leaderboardGap).Render(side),
			)
		}
	}

	footer := m.help.View(m.keys)
	if m.state.Phase == core.PhasePaused {
		footer = statusStyle.Render("PAUSED") + "  " + footer
	}
	return board + "\n" + footer
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits.
func Run(game registry.Game, cfg config.SnakeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
