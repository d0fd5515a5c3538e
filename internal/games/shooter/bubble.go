package shooter

import (
	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/sprite"
)

const (
	classPenguin = "penguin"
	classShooter = "shooter"
	classBubble  = "bubble"
)

// bubble is one colored bubble entity: a target, a loaded shot or the one
// waiting in the chamber.
type bubble struct {
	color  string
	entity *sprite.Entity
	popped bool
}

// spawnBubble mounts a new bubble of color at pos.
func (g *Game) spawnBubble(color string, pos core.Point) (*bubble, error) {
	e := sprite.New(classBubble, g.loop,
		sprite.WithFrames(len(g.cfg.Sprites.Bubble.Frames)),
		sprite.WithInterval(g.millis(g.cfg.Bubbles.BurstLoopMs)),
		sprite.WithLogger(g.spriteLog),
	)
	if err := e.Init(g.stage); err != nil {
		return nil, err
	}
	if err := e.SetPos(pos.X, pos.Y); err != nil {
		return nil, err
	}
	if err := e.SetStyle("color", color); err != nil {
		return nil, err
	}
	if g.cfg.Debug {
		if err := e.SetText(color[:1]); err != nil {
			return nil, err
		}
	}
	return &bubble{color: color, entity: e}, nil
}

// burst plays the burst animation and hides the bubble when it ends.
func (g *Game) burst(b *bubble) {
	if b.popped {
		return
	}
	b.popped = true

	//nolint:errcheck // Stop only fails on unbound entities
	b.entity.Stop()

	err := b.entity.Animate(sprite.AnimateConfig{
		From: g.cfg.Bubbles.BurstFrom,
		OnComplete: func() {
			//nolint:errcheck // Bound entity, cannot fail
			b.entity.Hide()
		},
	})
	if err != nil {
		// A single-frame burst range has nothing to play.
		g.log.Warn("burst animation", "err", err)
		//nolint:errcheck // Bound entity, cannot fail
		b.entity.Hide()
	}
}
