package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-balls-simulation/pkg/geometry"
)

// ResolveBallCollision computes the post-collision velocities of two
// overlapping balls of equal mass. Both velocities are projected onto the
// unit normal between the centers and the normal components are exchanged
// (exact 1D elastic collision along the normal); tangential components are
// untouched. Positions are not corrected: interpenetrating balls separate
// on their own over the following ticks.
//
// When the centers coincide there is no normal to project on; the pair is
// left unchanged and ErrDegenerateGeometry is returned so the caller can
// skip it for the current tick.
func ResolveBallCollision(a, b *Ball) error {
	n := b.Pos.Sub(a.Pos)
	if n.Len() < geometry.Epsilon {
		return fmt.Errorf("%w: balls %d and %d share position %v", ErrDegenerateGeometry, a.ID, b.ID, a.Pos)
	}
	n = n.Normalize()

	// Difference of the velocity projections on the normal.
	s := a.Vel.Dot(n) - b.Vel.Dot(n)

	a.Vel = a.Vel.Sub(n.Mul(s))
	b.Vel = b.Vel.Add(n.Mul(s))
	return nil
}

// ResolveWallCollision reflects a ball off the arena walls. Both axes are
// checked independently in the same call, so a corner hit bounces both
// velocity components at once. The position is clamped one unit inside the
// wall, which keeps floating point re-evaluation from re-triggering the
// same bounce next tick.
func ResolveWallCollision(b *Ball, arenaWidth, arenaHeight float64) {
	left := b.Pos.X - b.Radius
	right := b.Pos.X + b.Radius
	if left < 0 || right > arenaWidth {
		b.Vel.X = -b.Vel.X
		if b.Vel.X > 0 {
			b.Pos.X = b.Radius + 1
		} else {
			b.Pos.X = arenaWidth - b.Radius - 1
		}
	}

	up := b.Pos.Y - b.Radius
	down := b.Pos.Y + b.Radius
	if up < 0 || down > arenaHeight {
		b.Vel.Y = -b.Vel.Y
		if b.Vel.Y > 0 {
			b.Pos.Y = b.Radius + 1
		} else {
			b.Pos.Y = arenaHeight - b.Radius - 1
		}
	}
}
