package engine

// Params holds every tunable constant of the simulation.
// Distances are in pixels, speeds in pixels per second, durations in seconds.
type Params struct {
	CellSize       float64 // Pixel size of one grid cell
	PlayerSpeed    float64
	GuardSpeed     float64
	FallSpeed      float64 // Shared by both entity kinds
	AlignTolerance float64 // Max pixel offset still considered centered on a cell

	DigCooldown      float64 // Minimum time between two digs
	OpenDuration     float64 // Time a dug brick stays open
	FillDuration     float64 // Time a dug brick takes to regenerate
	TrapMargin       float64 // Trap timer = remaining open time minus this
	ClimbRetry       float64 // Trap timer after a blocked climb-out
	GuardRespawnTime float64

	CollisionFraction float64 // Guard/player overlap threshold as a fraction of CellSize

	GoldPoints          int
	GuardTrapPoints     int
	LevelCompletePoints int
	StartLives          int
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		CellSize:       20,
		PlayerSpeed:    80, // 4 cells/s
		GuardSpeed:     50,
		FallSpeed:      120,
		AlignTolerance: 0.5,

		DigCooldown:      0.5,
		OpenDuration:     6,
		FillDuration:     1,
		TrapMargin:       0.5,
		ClimbRetry:       0.5,
		GuardRespawnTime: 3,

		CollisionFraction: 0.6,

		GoldPoints:          250,
		GuardTrapPoints:     75,
		LevelCompletePoints: 1500,
		StartLives:          3,
	}
}

// MaxStep returns the largest dt for which no entity can cross a whole cell
// in one tick. Hosts clamp dt to this (or smaller) before calling Update.
func (p Params) MaxStep() float64 {
	fastest := max(p.PlayerSpeed, p.GuardSpeed, p.FallSpeed)
	if fastest <= 0 {
		return 0
	}
	return p.CellSize / fastest / 2
}
