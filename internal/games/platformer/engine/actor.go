package engine

import "math"

// ActorKind identifies the variant of an actor.
type ActorKind uint8

const (
	KindPlayer ActorKind = iota
	KindLava
	KindCoin
)

// String returns the string representation of an actor kind.
func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLava:
		return "lava"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Actor is a dynamic entity living on top of the tile grid.
// The set of implementations is closed: *Player, *Lava and *Coin.
type Actor interface {
	Kind() ActorKind
	Pos() Vec  // Top-left corner in tile units
	Size() Vec // Width and height in tile units

	update(dt float64, l *Level, keys Keys)
}

// overlaps reports whether two actors' rectangles strictly intersect.
func overlaps(a, b Actor) bool {
	ap, as := a.Pos(), a.Size()
	bp, bs := b.Pos(), b.Size()
	return ap.X+as.X > bp.X && ap.X < bp.X+bs.X &&
		ap.Y+as.Y > bp.Y && ap.Y < bp.Y+bs.Y
}

// Player is the actor controlled by the keys.
type Player struct {
	pos   Vec
	size  Vec
	speed Vec
}

func newPlayer(cell Vec) *Player {
	return &Player{
		pos:  cell.Plus(V(0, -0.5)), // 1.5 tall, standing on the cell floor
		size: V(0.8, 1.5),
	}
}

func (p *Player) Kind() ActorKind { return KindPlayer }
func (p *Player) Pos() Vec        { return p.pos }
func (p *Player) Size() Vec       { return p.size }

// Velocity returns the player's current speed.
func (p *Player) Velocity() Vec { return p.speed }

func (p *Player) update(dt float64, l *Level, keys Keys) {
	p.moveX(dt, l, keys)
	p.moveY(dt, l, keys)

	if other := l.ActorAt(p); other != nil {
		l.touched(contactOf(other), other)
	}

	// Losing animation: sink and shrink.
	if l.status == StatusLost {
		p.pos.Y += dt
		p.size.Y -= dt
	}
}

// moveX never zeroes speed.X on a hit; it is recomputed from keys each step.
func (p *Player) moveX(dt float64, l *Level, keys Keys) {
	p.speed.X = 0
	if keys.Left {
		p.speed.X -= l.params.PlayerSpeed
	}
	if keys.Right {
		p.speed.X += l.params.PlayerSpeed
	}

	newPos := p.pos.Plus(V(p.speed.X*dt, 0))
	if obstacle := l.ObstacleAt(newPos, p.size); obstacle != TileEmpty {
		l.touched(tileContact(obstacle), nil)
		return
	}
	p.pos = newPos
}

func (p *Player) moveY(dt float64, l *Level, keys Keys) {
	p.speed.Y += l.params.Gravity * dt

	newPos := p.pos.Plus(V(0, p.speed.Y*dt))
	if obstacle := l.ObstacleAt(newPos, p.size); obstacle != TileEmpty {
		l.touched(tileContact(obstacle), nil)
		if keys.Up && p.speed.Y > 0 {
			p.speed.Y = -l.params.JumpSpeed
		} else {
			p.speed.Y = 0
		}
		return
	}
	p.pos = newPos
}

// LavaMotion is the movement mode of a lava actor.
type LavaMotion uint8

const (
	LavaHorizontal LavaMotion = iota // '=' bounces left/right
	LavaBounce                       // '|' bounces up/down
	LavaDrip                         // 'v' falls and restarts at its spawn
)

// String returns the string representation of a lava motion.
func (m LavaMotion) String() string {
	switch m {
	case LavaHorizontal:
		return "horizontal"
	case LavaBounce:
		return "bounce"
	case LavaDrip:
		return "drip"
	default:
		return "unknown"
	}
}

// Lava is a moving hazard.
type Lava struct {
	pos    Vec
	size   Vec
	speed  Vec
	motion LavaMotion
	reset  Vec // Spawn position, used by drip lava
}

func newLava(cell Vec, ch byte) *Lava {
	lava := &Lava{pos: cell, size: V(1, 1), reset: cell}
	switch ch {
	case '=':
		lava.motion = LavaHorizontal
		lava.speed = V(2, 0)
	case '|':
		lava.motion = LavaBounce
		lava.speed = V(0, 2)
	case 'v':
		lava.motion = LavaDrip
		lava.speed = V(0, 3)
	}
	return lava
}

func (lv *Lava) Kind() ActorKind { return KindLava }
func (lv *Lava) Pos() Vec        { return lv.pos }
func (lv *Lava) Size() Vec       { return lv.size }

// Velocity returns the lava's current speed.
func (lv *Lava) Velocity() Vec { return lv.speed }

// Motion returns the movement mode.
func (lv *Lava) Motion() LavaMotion { return lv.motion }

// ResetPos returns the position drip lava restarts from.
func (lv *Lava) ResetPos() Vec { return lv.reset }

func (lv *Lava) update(dt float64, l *Level, _ Keys) {
	newPos := lv.pos.Plus(lv.speed.Scale(dt))
	switch {
	case l.ObstacleAt(newPos, lv.size) == TileEmpty:
		lv.pos = newPos
	case lv.motion == LavaDrip:
		lv.pos = lv.reset
	default:
		lv.speed = lv.speed.Scale(-1)
	}
}

// Coin is a collectible. Its motion is cosmetic and never collides.
type Coin struct {
	pos    Vec
	base   Vec
	size   Vec
	wobble float64 // Phase in radians
}

func newCoin(cell Vec, phase float64) *Coin {
	base := cell.Plus(V(0.2, 0.1))
	return &Coin{
		pos:    base,
		base:   base,
		size:   V(0.6, 0.6),
		wobble: phase,
	}
}

func (c *Coin) Kind() ActorKind { return KindCoin }
func (c *Coin) Pos() Vec        { return c.pos }
func (c *Coin) Size() Vec       { return c.size }

// BasePos returns the anchor the coin wobbles around.
func (c *Coin) BasePos() Vec { return c.base }

// Phase returns the current wobble phase.
func (c *Coin) Phase() float64 { return c.wobble }

func (c *Coin) update(dt float64, l *Level, _ Keys) {
	c.wobble += dt * l.params.WobbleSpeed
	c.pos = c.base.Plus(V(0, math.Sin(c.wobble)*l.params.WobbleDist))
}
