package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/sprite"
)

// fire launches b from the shooter at deg degrees from vertical.
func (g *Game) fire(b *bubble, deg float64) {
	g.shots--
	g.inFlight++
	g.log.Debug("fire", "color", b.color, "deg", deg, "shots", g.shots)
	g.launch(b, deg)
}

// launch moves b in a straight line until it meets a wall or the ceiling.
// Walls bounce it back at the mirrored angle.
func (g *Game) launch(b *bubble, deg float64) {
	to, wall := trajectory(b.entity.Pos(), deg, g.field, float64(g.cfg.Sprites.Bubble.Width))

	err := b.entity.MoveTo(to, sprite.MoveConfig{
		Step:     g.difficulty.Speed(g.cfg.Bubbles.Step, g.score, g.tickCount),
		Interval: g.millis(g.cfg.Bubbles.LoopTimeMs),
		StepArg:  b,
		OnStep: func(arg any) {
			g.checkHit(arg.(*bubble))
		},
		OnComplete: func(*sprite.Entity) {
			switch {
			case g.checkHit(b):
			case wall:
				g.launch(b, -deg)
			default:
				g.stickToCeiling(b)
			}
		},
	})
	if err != nil {
		g.log.Error("launch", "err", err)
		g.burst(b)
		g.resolve()
	}
}

// checkHit stops b at the first target it touches and attaches it next to
// that target. Reports whether a hit happened.
func (g *Game) checkHit(b *bubble) bool {
	var hit cell
	found := false

	g.targets.each(func(c cell, t *bubble) {
		if found {
			return
		}
		ok, err := b.entity.CheckCollision(t.entity, sprite.CollideCircle)
		if err != nil {
			g.log.Error("collision", "err", err)
			return
		}
		if ok {
			hit, found = c, true
		}
	})
	if !found {
		return false
	}

	//nolint:errcheck // Bound entity, cannot fail
	b.entity.Stop()

	var free []cell
	for _, n := range g.targets.neighbours(hit) {
		if g.inGrid(n) && g.targets.get(n) == nil {
			free = append(free, n)
		}
	}
	g.attach(b, free)
	return true
}

// stickToCeiling attaches b to the nearest free slot of the top row.
func (g *Game) stickToCeiling(b *bubble) {
	var free []cell
	for c := 0; c < g.targets.cols; c++ {
		at := cell{0, c}
		if g.inGrid(at) && g.targets.get(at) == nil {
			free = append(free, at)
		}
	}
	g.attach(b, free)
}

// inGrid reports whether c is a slot inside the grid and the field.
func (g *Game) inGrid(c cell) bool {
	if c.row < 0 || c.row >= g.targets.rows || c.col < 0 || c.col >= g.targets.cols {
		return false
	}
	return g.fits(g.slotPos(c))
}

// attach snaps b into the candidate slot closest to it, then pops the group
// it completes. With no candidate the bubble bursts.
func (g *Game) attach(b *bubble, candidates []cell) {
	defer g.resolve()

	if len(candidates) == 0 {
		g.burst(b)
		return
	}

	pos := b.entity.Pos()
	best := candidates[0]
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if d := core.Distance(pos, g.slotPos(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	at := g.slotPos(best)
	//nolint:errcheck // Bound entity, cannot fail
	b.entity.SetPos(at.X, at.Y)
	g.targets.set(best, b)

	group := g.targets.cluster(best)
	if len(group) < g.cfg.Gameplay.Match {
		return
	}

	for _, c := range group {
		g.pop(c)
	}
	dropped := g.dropFloating()

	popped := len(group) + dropped
	g.score += popped * g.cfg.Gameplay.Points
	g.log.Debug("pop", "color", b.color, "group", len(group), "dropped", dropped, "score", g.score)
}

// pop removes the bubble at c from the grid and bursts it.
func (g *Game) pop(c cell) {
	b := g.targets.get(c)
	if b == nil {
		return
	}
	g.targets.set(c, nil)
	g.burst(b)
}

// dropFloating pops every bubble no longer connected to the ceiling.
// Returns the number of bubbles dropped.
func (g *Game) dropFloating() int {
	anchored := make(map[cell]bool)
	var queue []cell
	for c := 0; c < g.targets.cols; c++ {
		at := cell{0, c}
		if g.targets.get(at) != nil {
			anchored[at] = true
			queue = append(queue, at)
		}
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.targets.neighbours(c) {
			if anchored[n] || g.targets.get(n) == nil {
				continue
			}
			anchored[n] = true
			queue = append(queue, n)
		}
	}

	var loose []cell
	g.targets.each(func(c cell, _ *bubble) {
		if !anchored[c] {
			loose = append(loose, c)
		}
	})
	for _, c := range loose {
		g.pop(c)
	}
	return len(loose)
}

// resolve finishes a shot and decides whether the level or the game ends.
func (g *Game) resolve() {
	g.inFlight--

	switch {
	case g.targets.count() == 0:
		g.clearLevel()
	case g.reachedShooter():
		g.endGame("bubbles reached the shooter")
	case g.shots <= 0 && g.inFlight <= 0:
		g.endGame("out of shots")
	}
}

// reachedShooter reports whether any bubble sits on the last grid row.
func (g *Game) reachedShooter() bool {
	last := g.targets.rows - 1
	for c := 0; c < g.targets.cols; c++ {
		if g.targets.get(cell{last, c}) != nil {
			return true
		}
	}
	return false
}

func (g *Game) clearLevel() {
	if g.clearing {
		return
	}
	g.clearing = true

	bonus := g.shots * g.cfg.Gameplay.LevelBonus
	g.score += bonus
	g.log.Info("level cleared", "level", g.level, "bonus", bonus, "score", g.score)

	// Start the next level once the last burst has played.
	frames := len(g.cfg.Sprites.Bubble.Frames) - g.cfg.Bubbles.BurstFrom + 1
	g.loop.AfterFunc(time.Duration(frames)*g.millis(g.cfg.Bubbles.BurstLoopMs), func() {
		g.pendingLevel = true
	})
}

func (g *Game) endGame(reason string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.player.stop()
	g.log.Info("game over", "reason", reason, "level", g.level, "score", g.score)
}
