// Package shooter implements a penguin bubble shooter.
// The player steers a rotating shooter at the bottom of the field and fires
// colored bubbles at the rows hanging from the ceiling. Bubbles stick where
// they land; connected groups of one color pop, and bubbles left hanging by a
// pop drop with them.
//
// Every bubble, the penguin and the shooter are sprite entities on a virtual
// clock that advances by one tick duration per Step.
package shooter

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-arcade/internal/clock"
	"github.com/vovakirdan/penguin-arcade/internal/config"
	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/registry"
	"github.com/vovakirdan/penguin-arcade/internal/stage"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives game events; discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Glyphs for the field frame
const (
	WallChar    = '│'
	CeilingChar = '─'
)

// Game implements the bubble shooter logic.
type Game struct {
	cfg        config.ShooterConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	log        *log.Logger
	spriteLog  *log.Logger

	loop  *clock.Loop
	stage *stage.Stage
	field core.Box

	player   *player
	targets  *grid
	inFlight int

	score     int
	level     int
	shots     int
	tickCount int
	gameOver  bool
	paused    bool

	clearing     bool // Level cleared, waiting for the last bursts
	pendingLevel bool // Start the next level on the next Step
}

// New creates a new bubble shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Penguin Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger.WithPrefix("shooter")
	g.spriteLog = logger.WithPrefix("sprite")

	// Load configuration
	gameCfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		gameCfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&gameCfg, difficultyPreset)
	}

	g.cfg = gameCfg
	g.runtime = cfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.level = 1
	g.tickCount = 0
	g.gameOver = false
	g.paused = false

	g.startLevel()
}

// startLevel rebuilds the field for the current level. Entities from the
// previous level are dropped together with their loop.
func (g *Game) startLevel() {
	g.loop = clock.NewLoop()
	g.stage = stage.New()
	g.inFlight = 0
	g.clearing = false
	g.pendingLevel = false

	if err := g.defineSheets(); err != nil {
		g.log.Error("sprite sheets", "err", err)
		g.gameOver = true
		return
	}

	fc := g.cfg.Field
	g.field = core.NewBox(
		float64(fc.SideMargin),
		float64(fc.TopMargin),
		float64(max(1, g.runtime.ScreenW-2*fc.SideMargin)),
		float64(max(1, g.runtime.ScreenH-fc.TopMargin-fc.BottomMargin)),
	)

	g.shots = g.difficulty.Shots(g.cfg.Gameplay.Shots, g.score)
	g.spawnTargets()

	p, err := newPlayer(g)
	if err != nil {
		g.log.Error("player", "err", err)
		g.gameOver = true
		return
	}
	g.player = p

	g.log.Info("level start", "level", g.level, "targets", g.targets.count(), "shots", g.shots)
}

func (g *Game) defineSheets() error {
	sprites := []struct {
		class string
		sheet config.SheetConfig
		layer int
	}{
		{classShooter, g.cfg.Sprites.Shooter, 0},
		{classPenguin, g.cfg.Sprites.Penguin, 0},
		{classBubble, g.cfg.Sprites.Bubble, 1},
	}

	for _, s := range sprites {
		color, ok := core.ParseColor(s.sheet.Color)
		if !ok {
			return fmt.Errorf("shooter: %s sheet: unknown color %q", s.class, s.sheet.Color)
		}
		sheet, err := stage.NewSheet(s.sheet.Width, s.sheet.Height, color, s.sheet.Frames)
		if err != nil {
			return fmt.Errorf("shooter: %s sheet: %w", s.class, err)
		}
		g.stage.Define(s.class, sheet, s.layer)
	}
	return nil
}

// gridRows returns the number of rows bubbles may occupy above the shooter.
func (g *Game) gridRows() int {
	return max(2, int(g.gunPos().Y-g.field.Y)-1)
}

func (g *Game) spawnTargets() {
	tc := g.cfg.Targets
	bw := g.cfg.Sprites.Bubble.Width

	cols, pos := layout(g.field, bw, tc.Gap)
	g.targets = newGrid(g.gridRows(), cols)

	rows := g.difficulty.Rows(tc.Rows, tc.MaxRows, g.level, g.score)
	rows = min(rows, g.targets.rows-2)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := cell{r, c}
			if !g.fits(pos(at)) {
				continue
			}
			color := g.cfg.Bubbles.Colors[g.rng.Intn(len(g.cfg.Bubbles.Colors))]
			b, err := g.spawnBubble(color, pos(at))
			if err != nil {
				g.log.Error("spawn target", "err", err)
				return
			}
			g.targets.set(at, b)
		}
	}
}

// fits reports whether a bubble at p lies inside the field.
func (g *Game) fits(p core.Point) bool {
	return p.X >= g.field.X && p.X+float64(g.cfg.Sprites.Bubble.Width) <= g.field.Right()
}

// slotPos returns the position of a grid slot.
func (g *Game) slotPos(c cell) core.Point {
	_, pos := layout(g.field, g.cfg.Sprites.Bubble.Width, g.cfg.Targets.Gap)
	return pos(c)
}

func (g *Game) gunPos() core.Point {
	w := g.cfg.Sprites.Shooter.Width
	h := g.cfg.Sprites.Shooter.Height
	x := math.Floor(g.field.X + g.field.W/2 - float64(w)/2)
	return core.Pt(x, g.field.Bottom()-float64(h))
}

// muzzlePos is where the loaded bubble waits.
func (g *Game) muzzlePos() core.Point {
	gp := g.gunPos()
	sw := g.cfg.Sprites.Shooter.Width
	bw := g.cfg.Sprites.Bubble.Width
	return core.Pt(gp.X+float64(sw/2-bw/2), gp.Y-float64(g.cfg.Sprites.Bubble.Height))
}

// chamberPos is where the next bubble waits beside the shooter.
func (g *Game) chamberPos() core.Point {
	gp := g.gunPos()
	return core.Pt(gp.X+float64(g.cfg.Sprites.Shooter.Width)+2, g.field.Bottom()-float64(g.cfg.Sprites.Bubble.Height))
}

// chamberSpawn is where new chamber bubbles appear.
func (g *Game) chamberSpawn() core.Point {
	return core.Pt(g.field.Right()-float64(g.cfg.Sprites.Bubble.Width), g.field.Bottom()-float64(g.cfg.Sprites.Bubble.Height))
}

func (g *Game) millis(ms int) time.Duration {
	return config.Millis(ms)
}

// nextColor picks a chamber color among those still on the field.
func (g *Game) nextColor() string {
	colors := g.targets.colors()
	if len(colors) == 0 {
		colors = g.cfg.Bubbles.Colors
	}
	return colors[g.rng.Intn(len(colors))]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		// Let the last bursts finish
		if g.loop != nil {
			g.loop.Advance(g.runtime.TickDuration())
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch {
	case in.Has(core.ActionLeft):
		g.player.steer(moveLeft)
	case in.Has(core.ActionRight):
		g.player.steer(moveRight)
	case in.Has(core.ActionCenter):
		g.player.center()
	}
	if in.Has(core.ActionFire) {
		g.player.shoot()
	}

	g.loop.Advance(g.runtime.TickDuration())

	if g.pendingLevel {
		g.level++
		g.startLevel()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.stage == nil {
		return
	}

	g.drawField(dst)
	g.stage.Render(dst)

	// Draw HUD
	angle := 0.0
	if g.player != nil {
		angle = g.player.angle()
	}
	hud := fmt.Sprintf(" Score: %d  Level: %d  Shots: %d  Aim: %+.0f° ", g.score, g.level, g.shots, angle)
	dst.DrawText(2, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawField(dst *core.Screen) {
	left := int(g.field.X) - 1
	right := int(g.field.Right())
	top := int(g.field.Y) - 1
	height := int(g.field.H)

	dst.DrawHLine(left, top, right-left+1, CeilingChar)
	for y := top + 1; y <= top+height; y++ {
		dst.SetColored(left, y, WallChar, core.ColorGray)
		dst.SetColored(right, y, WallChar, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2

	boxWidth := max(len(title), len(subtitle)) + 4
	boxX := (dst.Width() - boxWidth) / 2

	dst.DrawBox(core.NewRect(boxX, centerY-2, boxWidth, 5))
	dst.DrawRect(core.NewRect(boxX+1, centerY-1, boxWidth-2, 3), ' ')
	dst.DrawTextCentered(centerY-1, title)
	dst.DrawTextCentered(centerY+1, subtitle)
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
