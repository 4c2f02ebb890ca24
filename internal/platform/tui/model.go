package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// summaryGrace is how long the game-over screen ignores keys, so a key held
// at the moment of death does not dismiss it.
const summaryGrace = 500 * time.Millisecond

type phase int

const (
	phasePlaying phase = iota
	phaseSummary
)

// Result describes how a game ended.
type Result struct {
	Score int
	Quit  bool // Ended by the quit key rather than a collision
	Cause snake.Cause
}

// Model is the Bubble Tea model running one snake session.
type Model struct {
	session *snake.Session
	screen  *core.Screen
	layout  Layout
	keys    KeyMap
	help    help.Model
	theme   Theme
	logger  *log.Logger
	config  core.RuntimeConfig
	now     func() time.Time

	input   core.InputFrame
	last    time.Time // Time of the previous frame, zero until the first one
	phase   phase
	quit    bool
	endedAt time.Time
	ready   bool
	exiting bool
}

// NewModel creates a model for the given session.
func NewModel(session *snake.Session, cfg core.RuntimeConfig, theme Theme, logger *log.Logger) Model {
	return newModel(session, cfg, theme, logger, time.Now)
}

func newModel(session *snake.Session, cfg core.RuntimeConfig, theme Theme, logger *log.Logger, now func() time.Time) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	snap := session.Snapshot()
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		layout:  NewLayout(cfg.ScreenW, snap.Width, snap.Height),
		keys:    DefaultKeyMap(),
		help:    h,
		theme:   theme,
		logger:  logger,
		config:  cfg,
		now:     now,
		input:   core.NewInputFrame(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))

	case graceMsg:
		m.ready = true
		return m, nil
	}

	return m, nil
}

// handleKey buffers directional input until the next frame. The quit key
// ends the game immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseSummary {
		if msg.String() == "ctrl+c" || m.ready || m.now().Sub(m.endedAt) >= summaryGrace {
			m.exiting = true
			return m, tea.Quit
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit by player", "score", m.session.Score())
		return m.endGame(true)
	}
	m.input.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	snap := m.session.Snapshot()
	m.layout = NewLayout(msg.Width, snap.Width, snap.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies buffered input, feeds elapsed wall time to the session
// and schedules the next frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, nil
	}

	// The clock starts at the first frame, so program startup is not
	// counted as game time.
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = max(0, now.Sub(m.last))
	}
	m.last = now

	if dir, ok := m.input.LastDirection(); ok {
		m.session.SetDirection(toDirection(dir))
	}
	m.input.Clear()

	// The board is not visible, so the game is held.
	if m.tooSmall() {
		return m, tickCmd(m.config.TickRate)
	}

	state := m.session.Tick(elapsed)
	m.logEvents()
	if state == snake.Dead {
		return m.endGame(false)
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) endGame(quit bool) (tea.Model, tea.Cmd) {
	m.phase = phaseSummary
	m.quit = quit
	m.endedAt = m.now()
	return m, graceCmd(summaryGrace)
}

func (m Model) logEvents() {
	for _, ev := range m.session.DrainEvents() {
		switch e := ev.(type) {
		case snake.ItemEatenEvent:
			m.logger.Debug("item eaten", "at", fmt.Sprintf("%d,%d", e.At.X, e.At.Y), "score", e.Score, "length", e.Length)
		case snake.BoardFullEvent:
			m.logger.Warn("board full, no item placed", "length", e.Length)
		case snake.DiedEvent:
			m.logger.Info("snake died", "cause", e.Cause, "score", e.Score, "ticks", e.Ticks)
		}
	}
}

func (m Model) tooSmall() bool {
	return !m.layout.Fits(m.config.ScreenW, m.config.ScreenH)
}

// Result returns the outcome of the game.
func (m Model) Result() Result {
	snap := m.session.Snapshot()
	return Result{Score: snap.Score, Quit: m.quit, Cause: snap.Cause}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.exiting {
		return ""
	}

	m.screen.Clear()
	if m.tooSmall() {
		DrawTooSmall(m.screen, m.layout, m.theme)
		return RenderScreen(m.screen)
	}

	snap := m.session.Snapshot()
	DrawBoard(m.screen, m.layout, snap, m.theme)
	if m.phase == phaseSummary {
		DrawSummary(m.screen, m.layout, snap, m.quit, m.ready, m.theme)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func toDirection(a core.Action) snake.Direction {
	switch a {
	case core.ActionDown:
		return snake.DirDown
	case core.ActionLeft:
		return snake.DirLeft
	case core.ActionRight:
		return snake.DirRight
	default:
		return snake.DirUp
	}
}

// Run starts a Bubble Tea program for a new session and blocks until the
// player dismisses the game-over screen. The terminal is restored on return.
func Run(cfg core.RuntimeConfig, theme Theme, logger *log.Logger) (Result, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	session := snake.NewSession(rand.New(rand.NewSource(cfg.Seed)))

	snap := session.Snapshot()
	logger.Info("session started", "grid", fmt.Sprintf("%dx%d", snap.Width, snap.Height), "seed", cfg.Seed, "fps", cfg.TickRate)

	p := tea.NewProgram(
		NewModel(session, cfg, theme, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("tui: unexpected model type %T", final)
	}
	return m.Result(), nil
}
