package engine

import "math"

// Kind distinguishes the two entity classes.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindGuard
)

// Facing is the horizontal direction an entity looks at.
type Facing int8

const (
	FacingRight Facing = iota
	FacingLeft
)

// AnimState is derived each tick from the entity's surroundings and motion.
type AnimState uint8

const (
	AnimStanding AnimState = iota
	AnimRunning
	AnimClimbing
	AnimHanging
	AnimFalling
	AnimDigging
)

// String returns the animation state name.
func (a AnimState) String() string {
	switch a {
	case AnimStanding:
		return "standing"
	case AnimRunning:
		return "running"
	case AnimClimbing:
		return "climbing"
	case AnimHanging:
		return "hanging"
	case AnimFalling:
		return "falling"
	case AnimDigging:
		return "digging"
	default:
		return "unknown"
	}
}

// Entity is the position and animation state shared by players and guards.
//
// The embedded Cell is always the cell nearest to (X, Y), so the pixel
// position never strays more than half a cell from it. X and Y are the pixel
// coordinates of the entity's center. Target is the cell the entity is
// currently interpolating toward; it equals Cell once the entity is aligned.
type Entity struct {
	Cell
	X, Y    float64
	Target  Cell
	Falling bool
	Facing  Facing
	Anim    AnimState
}

// newEntity places an entity at the center of c.
func newEntity(c Cell, size float64) Entity {
	e := Entity{}
	e.placeAt(c, size)
	return e
}

// CellCenter returns the pixel center of c.
func CellCenter(c Cell, size float64) (x, y float64) {
	return (float64(c.Col) + 0.5) * size, (float64(c.Row) + 0.5) * size
}

// nearestCell returns the cell whose area contains the pixel point.
func nearestCell(x, y, size float64) Cell {
	return Cell{
		Col: int(math.Floor(x / size)),
		Row: int(math.Floor(y / size)),
	}
}

func (e *Entity) placeAt(c Cell, size float64) {
	e.Cell = c
	e.Target = c
	e.X, e.Y = CellCenter(c, size)
}

// Aligned reports whether the entity sits on its cell center within tol
// and has no pending target.
func (e *Entity) Aligned(size, tol float64) bool {
	if e.Target != e.Cell {
		return false
	}
	cx, cy := CellCenter(e.Cell, size)
	return math.Abs(e.X-cx) <= tol && math.Abs(e.Y-cy) <= tol
}

// advance moves the entity toward the center of Target by at most step
// pixels. Movement is always along one axis. It returns true once the
// target center has been reached, snapping exactly onto it.
func (e *Entity) advance(step, size float64) bool {
	tx, ty := CellCenter(e.Target, size)
	dx, dy := tx-e.X, ty-e.Y
	if math.Abs(dx)+math.Abs(dy) <= step {
		e.X, e.Y = tx, ty
		e.Cell = e.Target
		return true
	}
	e.X += clampStep(dx, step)
	e.Y += clampStep(dy, step)
	e.Cell = nearestCell(e.X, e.Y, size)
	return false
}

func clampStep(d, step float64) float64 {
	switch {
	case d > step:
		return step
	case d < -step:
		return -step
	default:
		return d
	}
}

// Player is the single user-controlled entity.
type Player struct {
	Entity
	Alive       bool
	DigCooldown float64
}

// GuardState is the guard AI state.
type GuardState uint8

const (
	GuardChasing GuardState = iota
	GuardTrapped
	GuardClimbingOut
	GuardDead
)

// String returns the guard state name.
func (s GuardState) String() string {
	switch s {
	case GuardChasing:
		return "chasing"
	case GuardTrapped:
		return "trapped"
	case GuardClimbingOut:
		return "climbing_out"
	case GuardDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Guard is an AI-controlled enemy.
type Guard struct {
	Entity
	State        GuardState
	TrapTimer    float64
	CarriesGold  bool
	RespawnCell  Cell
	RespawnTimer float64
}

// Dangerous reports whether touching this guard kills the player.
func (g *Guard) Dangerous() bool {
	return g.State == GuardChasing || g.State == GuardClimbingOut
}
