package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	resets []core.RuntimeConfig
	inputs []core.InputFrame
	endAt  int
	score  int
	state  core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.inputs = nil
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.inputs = append(g.inputs, frame)

	if len(g.inputs) >= g.endAt {
		g.state = core.GameState{Score: g.score, Level: 3, GameOver: true}
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestModelForwardsActions(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}, nil)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if len(g.resets) != 1 || g.resets[0].ScreenH != 19 {
		t.Fatalf("resets = %v, expected one reset with a help bar row reserved", g.resets)
	}

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	m = tick(t, m)

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionFire) {
		t.Errorf("first step input = %v, expected Left and Fire", g.inputs[0].Actions)
	}
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("second step input = %v, expected cleared input", g.inputs[1].Actions)
	}

	view := m.View()
	if !strings.HasPrefix(view, "scripted") {
		t.Errorf("View() should start with the game screen, got %q", view[:min(20, len(view))])
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}, nil)
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelSavesScoreOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAt: 2, score: 150}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}, nil)
	m.Init()

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 150 || scores[0].Level != 3 {
		t.Errorf("scores = %+v, expected one entry of 150 at level 3", scores)
	}

	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m)
	if len(g.resets) != 2 {
		t.Errorf("resets = %d, expected restart after game over", len(g.resets))
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelResizeRestartsRunningGame(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}, nil)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resets) != 2 {
		t.Fatalf("resets = %d, expected 2", len(g.resets))
	}
	if got := g.resets[1]; got.ScreenW != 100 || got.ScreenH != 29 {
		t.Errorf("reset after resize = %+v, expected 100x29", got)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
