package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-balls-simulation/pkg/geometry"
	"go.uber.org/zap"
)

// Simulation is the "Brain." It owns the authoritative ball population and
// advances it one tick at a time. Everything runs on a single goroutine: a
// tick fully completes (memberships, detection, resolution, integration)
// before the next starts, and renderers read Snapshot() only between ticks.
type Simulation struct {
	cfg      *Config
	grid     *Grid
	detector *Detector
	balls    []*Ball
	tick     uint64
	logger   *zap.Logger
}

// New validates the configuration, derives the grid and spawns the fixed
// ball population with random positions and velocities. A nil logger is
// replaced with a no-op one. Configuration errors surface here, before any
// simulation state exists.
func New(cfg *Config, logger *zap.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	grid, err := NewGrid(cfg.ArenaWidth, cfg.ArenaHeight, cfg.BallRadius*2, cfg.TargetBallsPerCell)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	s := &Simulation{
		cfg:      cfg,
		grid:     grid,
		detector: NewDetector(grid),
		logger:   logger,
	}
	s.spawnBalls(rng)

	logger.Info("grid ready",
		zap.Float64("cellWidth", grid.CellWidth),
		zap.Float64("cellHeight", grid.CellHeight),
		zap.Int("cols", grid.Cols),
		zap.Int("rows", grid.Rows),
		zap.Int("cells", grid.CellCount()),
		zap.Int("balls", len(s.balls)))

	return s, nil
}

// spawnBalls creates the whole population once. Positions are uniform in
// the arena, velocities uniform in [-MaxStartSpeed, +MaxStartSpeed] per
// axis. Balls are never destroyed or reallocated after this.
func (s *Simulation) spawnBalls(rng *rand.Rand) {
	s.balls = make([]*Ball, 0, s.cfg.BallCount)
	for i := 0; i < s.cfg.BallCount; i++ {
		pos := geometry.Vector2D{
			X: rng.Float64() * s.cfg.ArenaWidth,
			Y: rng.Float64() * s.cfg.ArenaHeight,
		}
		vel := geometry.Vector2D{
			X: (rng.Float64() - 0.5) * 2 * s.cfg.MaxStartSpeed,
			Y: (rng.Float64() - 0.5) * 2 * s.cfg.MaxStartSpeed,
		}
		b := NewBall(i, s.cfg.BallRadius, pos, vel)
		b.UpdateCells(s.grid)
		s.balls = append(s.balls, b)
	}
}

// Step advances the simulation by exactly one tick.
func (s *Simulation) Step() {
	s.tick++

	// 1. Refresh grid memberships; detection must never see stale cells.
	for _, b := range s.balls {
		b.Colliding = false
		b.UpdateCells(s.grid)
	}

	// 2. Broad + narrow phase.
	pairs := s.detector.FindOverlappingPairs(s.balls)

	// 3. Resolve pairs sequentially in detection order. A ball caught in
	// several overlaps gets one velocity update per pair, with no
	// convergence pass; not exact for 3+ simultaneous contacts, but it is
	// the behavior this engine is specified to have.
	for _, p := range pairs {
		if err := ResolveBallCollision(p.A, p.B); err != nil {
			s.logger.Warn("skipping collision pair",
				zap.Uint64("tick", s.tick),
				zap.Int("a", p.A.ID),
				zap.Int("b", p.B.ID),
				zap.Error(err))
			continue
		}
		p.A.Colliding = true
		p.B.Colliding = true
	}

	// 4. Integrate and keep every ball inside the arena.
	for _, b := range s.balls {
		b.UpdatePhysics()
		ResolveWallCollision(b, s.cfg.ArenaWidth, s.cfg.ArenaHeight)
	}
}

// BallState is the read-only per-ball view handed to renderers.
type BallState struct {
	ID        int               `json:"id"`
	Pos       geometry.Vector2D `json:"pos"`
	Radius    float64           `json:"radius"`
	Colliding bool              `json:"colliding"`
}

// Snapshot copies the renderable state of every ball. Call it between
// ticks only; the returned slice is owned by the caller.
func (s *Simulation) Snapshot() []BallState {
	out := make([]BallState, 0, len(s.balls))
	for _, b := range s.balls {
		out = append(out, BallState{
			ID:        b.ID,
			Pos:       b.Pos,
			Radius:    b.Radius,
			Colliding: b.Colliding,
		})
	}
	return out
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Grid exposes the derived grid parameters (read-only by convention).
func (s *Simulation) Grid() *Grid {
	return s.grid
}
