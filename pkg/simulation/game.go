package simulation

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ball colors match the original look: blue at rest, red on the frame a
// ball collides.
var (
	ballColor     = color.RGBA{R: 50, G: 100, B: 255, A: 255}
	collidedColor = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	bgColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Game is the ebiten front-end. It drives Step() once per update and draws
// from the last snapshot; it carries no simulation logic of its own.
type Game struct {
	sim    *Simulation
	cfg    *Config
	paused bool

	lastState []BallState

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame wires a simulation to the ebiten run loop.
func GetNewGame(sim *Simulation, cfg *Config) *Game {
	return &Game{
		sim:       sim,
		cfg:       cfg,
		lastState: sim.Snapshot(),
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if !g.paused {
		g.sim.Step()
		// Snapshot after the tick completed; the draw path never sees a
		// partially updated population.
		g.lastState = g.sim.Snapshot()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(bgColor)

	for _, b := range g.lastState {
		clr := ballColor
		if b.Colliding {
			clr = collidedColor
		}
		vector.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), clr, true)
	}

	// Display timing breakdown for performance analysis
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nTick: %d\nBalls: %d\nCells: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.sim.Tick(),
		len(g.lastState),
		g.sim.Grid().CellCount(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.ArenaWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.ArenaWidth), int(g.cfg.ArenaHeight)
}
