package simulation

import "github.com/lao-tseu-is-alive/go-balls-simulation/pkg/geometry"

// Ball is one circular rigid body. ID and Radius never change after
// creation; Pos, Vel and the cell memberships mutate in place every tick.
type Ball struct {
	ID     int
	Radius float64
	Pos    geometry.Vector2D
	Vel    geometry.Vector2D

	// Colliding marks a ball that took part in at least one resolved
	// collision this tick. Renderers use it for highlighting.
	Colliding bool

	// cells holds the 1..4 distinct grid cells the bounding square
	// touches. The backing array is reused across ticks.
	cells []CellID
}

// NewBall creates a ball with a stable id.
func NewBall(id int, radius float64, pos, vel geometry.Vector2D) *Ball {
	return &Ball{
		ID:     id,
		Radius: radius,
		Pos:    pos,
		Vel:    vel,
		cells:  make([]CellID, 0, maxCellsPerBall),
	}
}

// Cells returns the grid cells the ball currently belongs to. Only valid
// after UpdateCells ran for the current position; never read it stale.
func (b *Ball) Cells() []CellID {
	return b.cells
}

// UpdateCells recomputes the grid membership from the current position.
func (b *Ball) UpdateCells(g *Grid) {
	b.cells = g.AppendCells(b.cells[:0], b.Pos, b.Radius)
}

// UpdatePhysics applies the velocity to the ball position
// (explicit Euler, one unit timestep per tick).
func (b *Ball) UpdatePhysics() {
	b.Pos = b.Pos.Add(b.Vel)
}

// DistanceTo gives the cartesian distance between this ball's center and the other's.
func (b *Ball) DistanceTo(other *Ball) float64 {
	return b.Pos.Sub(other.Pos).Len()
}

// DistanceSquaredTo gives the squared center distance, avoiding the square root.
func (b *Ball) DistanceSquaredTo(other *Ball) float64 {
	return b.Pos.Sub(other.Pos).LenSqr()
}
