package shooter

import (
	"math"

	"github.com/vovakirdan/penguin-arcade/internal/clock"
	"github.com/vovakirdan/penguin-arcade/internal/config"
	"github.com/vovakirdan/penguin-arcade/internal/sprite"
)

// movement is the way the player is steering the shooter.
type movement int

const (
	moveNone movement = iota
	moveLeft
	moveRight
)

// player drives the penguin, the rotating shooter and the bubble chamber.
type player struct {
	game    *Game
	penguin *sprite.Entity
	gun     *sprite.Entity

	movement movement
	deg      float64

	rotation *clock.Slot // Rotation observer
	release  *clock.Slot // Recenters the penguin after the last steer key

	chamber *bubble // Waiting to be loaded
	loaded  *bubble // Sitting in the shooter, ready to fire

	stopped bool
}

func newPlayer(g *Game) (*player, error) {
	cfg := g.cfg

	gun := sprite.New(classShooter, g.loop, sprite.WithLogger(g.spriteLog))
	if err := gun.Init(g.stage); err != nil {
		return nil, err
	}
	gp := g.gunPos()
	if err := gun.SetPos(gp.X, gp.Y); err != nil {
		return nil, err
	}

	penguin := sprite.New(classPenguin, g.loop,
		sprite.WithFrames(len(cfg.Sprites.Penguin.Frames)),
		sprite.WithStartFrame(cfg.Player.StartFrame),
		sprite.WithInterval(g.millis(cfg.Player.LoopTimeMs)),
		sprite.WithLogger(g.spriteLog),
	)
	if err := penguin.Init(g.stage); err != nil {
		return nil, err
	}
	if err := penguin.SetPos(gp.X+float64(cfg.Player.OffsetX), gp.Y); err != nil {
		return nil, err
	}
	if err := penguin.Show(); err != nil {
		return nil, err
	}

	p := &player{
		game:     g,
		penguin:  penguin,
		gun:      gun,
		rotation: clock.NewSlot(g.loop),
		release:  clock.NewSlot(g.loop),
	}
	p.chargeChamber()
	p.observe()
	return p, nil
}

// animate plays one of the configured penguin animations.
func (p *player) animate(r config.AnimationRange, onComplete func()) {
	mode, err := sprite.ParseMode(r.Mode)
	if err != nil {
		p.game.log.Warn("penguin animation", "err", err)
		return
	}
	err = p.penguin.Animate(sprite.AnimateConfig{
		Mode:       mode,
		From:       r.From,
		To:         r.To,
		OnComplete: onComplete,
	})
	if err != nil {
		p.game.log.Warn("penguin animation", "err", err)
	}
}

// steer starts or keeps turning the shooter. Terminals report no key release,
// so every press pushes back the moment the penguin recenters.
func (p *player) steer(m movement) {
	if p.stopped {
		return
	}

	if p.movement != m {
		p.movement = m
		if m == moveLeft {
			p.animate(p.game.cfg.Player.Left, nil)
		} else {
			p.animate(p.game.cfg.Player.Right, nil)
		}
	}
	p.release.Arm(p.game.millis(p.game.cfg.Player.SteerReleaseMs), p.center)
}

// center plays the way back from a lean to the idle frame.
func (p *player) center() {
	p.release.Disarm()

	switch p.movement {
	case moveLeft:
		r := p.game.cfg.Player.Left
		p.animate(config.AnimationRange{From: r.To, To: r.From}, nil)
	case moveRight:
		r := p.game.cfg.Player.Right
		p.animate(config.AnimationRange{From: r.To, To: r.From}, nil)
	}
	p.movement = moveNone
}

// observe turns the shooter one step in the steering direction and re-arms.
func (p *player) observe() {
	sh := p.game.cfg.Shooter

	switch p.movement {
	case moveLeft:
		if p.deg > sh.MaxRotationLeft {
			p.turn(math.Max(p.deg-sh.RotationStep, sh.MaxRotationLeft))
		}
	case moveRight:
		if p.deg < sh.MaxRotationRight {
			p.turn(math.Min(p.deg+sh.RotationStep, sh.MaxRotationRight))
		}
	}

	p.rotation.Arm(p.game.millis(p.game.cfg.Player.RotationLoopMs), p.observe)
}

func (p *player) turn(deg float64) {
	p.deg = deg
	//nolint:errcheck // Bound entity, cannot fail
	p.gun.Rotate(deg)
}

// shoot loads the chamber bubble and fires the bubble already in the shooter.
// A shot before any bubble is loaded only advances the chamber.
func (p *player) shoot() {
	if p.stopped || p.game.shots <= 0 {
		return
	}

	p.chargeChamber()

	if p.loaded != nil {
		p.game.fire(p.loaded, p.deg)
		p.loaded = nil
	}

	p.release.Disarm()
	p.movement = moveNone
	p.animate(p.game.cfg.Player.Shoot, func() {
		//nolint:errcheck // Bound entity, cannot fail
		p.penguin.Show()
	})
}

// refillChamber promotes the chamber bubble to the shooter and slides a new
// one into the chamber.
func (p *player) refillChamber() {
	g := p.game
	p.loaded = p.chamber

	b, err := g.spawnBubble(g.nextColor(), g.chamberSpawn())
	if err != nil {
		g.log.Error("spawn chamber bubble", "err", err)
		p.chamber = nil
		return
	}
	p.chamber = b

	//nolint:errcheck // Positive step and interval from validated config
	b.entity.MoveTo(g.chamberPos(), sprite.MoveConfig{
		Step:     g.cfg.Bubbles.ChamberStep,
		Interval: g.millis(g.cfg.Bubbles.ChamberLoopMs),
	})
}

// chargeChamber moves the chamber bubble into the shooter; the chamber is
// refilled when it arrives.
func (p *player) chargeChamber() {
	if p.chamber == nil {
		p.refillChamber()
		if p.chamber == nil {
			return
		}
	}

	g := p.game
	//nolint:errcheck // Positive step and interval from validated config
	p.chamber.entity.MoveTo(g.muzzlePos(), sprite.MoveConfig{
		Step:     g.cfg.Bubbles.ChamberStep,
		Interval: g.millis(g.cfg.Bubbles.ChamberLoopMs),
		OnComplete: func(*sprite.Entity) {
			p.refillChamber()
		},
	})
}

// stop freezes the controls and the shooter.
func (p *player) stop() {
	p.stopped = true
	p.rotation.Disarm()
	p.release.Disarm()
	p.movement = moveNone
}

// angle returns the shooter angle for display.
func (p *player) angle() float64 {
	return p.deg
}
