package tui

import (
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	session := snake.NewSession(rand.New(rand.NewSource(1)))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := newModel(session, cfg, ThemeFromConfig(defaultThemeConfig()), log.New(io.Discard), clock.Now)
	return m, clock
}

// startedModel returns a model that has already processed its first frame.
func startedModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	m, clock := newTestModel(t)
	m, _ = update(t, m, TickMsg(clock.Now()))
	return m, clock
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTickAppliesBufferedDirection(t *testing.T) {
	m, clock := startedModel(t)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(clock.Advance(snake.TickInterval+time.Millisecond)))
	if cmd == nil {
		t.Fatal("expected the next frame to be scheduled")
	}

	snap := m.session.Snapshot()
	if snap.Direction != snake.DirRight {
		t.Errorf("Direction = %v, expected right (last key wins)", snap.Direction)
	}
	if snap.Head() != (snake.Position{X: 11, Y: 10}) {
		t.Errorf("Head = %v, expected (11,10)", snap.Head())
	}
	if len(m.input.Actions) != 0 {
		t.Errorf("input frame should be cleared after a tick, got %v", m.input.Actions)
	}
}

func TestTickWithoutElapsedTimeDoesNotMove(t *testing.T) {
	m, clock := startedModel(t)
	before := m.session.Snapshot().Head()

	m, _ = update(t, m, TickMsg(clock.Now()))
	m, _ = update(t, m, TickMsg(clock.Now().Add(-time.Second))) // clock went backwards

	if head := m.session.Snapshot().Head(); head != before {
		t.Errorf("Head moved to %v without elapsed time", head)
	}
}

func TestQuitKeyEndsGameWithoutDying(t *testing.T) {
	m, clock := newTestModel(t)

	m, _ = update(t, m, runeKey('q'))
	if m.phase != phaseSummary {
		t.Fatal("quit key should show the summary")
	}
	res := m.Result()
	if !res.Quit || res.Cause != snake.CauseNone {
		t.Errorf("Result = %+v, expected a quit with no cause", res)
	}
	if m.session.State() != snake.Alive {
		t.Error("quitting must not count as a losing move")
	}

	// Keys are ignored during the grace period.
	m, cmd := update(t, m, runeKey('x'))
	if isQuit(cmd) {
		t.Fatal("summary dismissed during the grace period")
	}

	clock.Advance(summaryGrace)
	_, cmd = update(t, m, runeKey('x'))
	if !isQuit(cmd) {
		t.Error("any key after the grace period should exit")
	}
}

func TestCtrlCAlwaysExitsSummary(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('q'))
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should exit the summary immediately")
	}
}

func TestReversalKillsSnake(t *testing.T) {
	m, clock := startedModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg(clock.Advance(snake.TickInterval+time.Millisecond)))

	if m.phase != phaseSummary {
		t.Fatal("death should show the summary")
	}
	res := m.Result()
	if res.Quit || res.Cause != snake.CauseSelf || res.Score != snake.InitialLength {
		t.Errorf("Result = %+v, expected self-collision with score %d", res, snake.InitialLength)
	}

	// No further frames after the summary is shown.
	_, cmd := update(t, m, TickMsg(clock.Advance(time.Second)))
	if cmd != nil {
		t.Error("ticks after game over should not schedule frames")
	}
}

func TestGraceMsgEnablesDismissHint(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('q'))

	if strings.Contains(m.View(), "Press any key") {
		t.Error("dismiss hint shown before the grace period")
	}
	m, _ = update(t, m, graceMsg{})
	view := m.View()
	if !strings.Contains(view, "Press any key") {
		t.Error("dismiss hint missing after the grace period")
	}
	if !strings.Contains(view, "Your final score is: 004") {
		t.Errorf("summary missing final score:\n%s", view)
	}
}

func TestViewShowsBoardAndScore(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "Score: 004") {
		t.Errorf("view missing score line:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("view missing help line:\n%s", view)
	}
}

func TestTooSmallHoldsGame(t *testing.T) {
	m, clock := startedModel(t)
	before := m.session.Snapshot().Head()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	m, _ = update(t, m, TickMsg(clock.Advance(time.Second)))

	if head := m.session.Snapshot().Head(); head != before {
		t.Errorf("game advanced while the board was hidden: %v", head)
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("expected a too-small notice")
	}

	// Growing the window resumes play without replaying the hidden time.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, TickMsg(clock.Advance(snake.TickInterval+time.Millisecond)))
	if head := m.session.Snapshot().Head(); head != (snake.Position{X: 10, Y: 9}) {
		t.Errorf("Head = %v, expected exactly one step to (10,9)", head)
	}
}

func TestFirstTickStartsClock(t *testing.T) {
	m, clock := newTestModel(t)
	before := m.session.Snapshot().Head()

	// Startup took a long time before the first frame arrived.
	m, _ = update(t, m, TickMsg(clock.Advance(5*time.Second)))
	if head := m.session.Snapshot().Head(); head != before {
		t.Fatalf("startup time was fed to the game, head moved to %v", head)
	}

	m, _ = update(t, m, TickMsg(clock.Advance(snake.TickInterval+time.Millisecond)))
	if head := m.session.Snapshot().Head(); head != (snake.Position{X: 10, Y: 9}) {
		t.Errorf("Head = %v, expected one step to (10,9)", head)
	}
}
