package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-balls-simulation/pkg/simulation"
	"go.uber.org/zap"
)

var (
	ballStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	hitStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func main() {
	var (
		ballCount  = flag.Int("n", 0, "number of balls (overrides config)")
		ballRadius = flag.Float64("r", 0, "ball radius (overrides config)")
		seed       = flag.Uint64("seed", 0, "RNG seed; 0 seeds from the clock")
	)
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *ballCount > 0 {
		cfg.BallCount = *ballCount
	}
	if *ballRadius > 0 {
		cfg.BallRadius = *ballRadius
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// The terminal owns stdout once the screen is up, so the simulation
	// runs with a no-op logger here; fatal errors go through log before
	// Init.
	sim, err := simulation.New(cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("cannot create simulation: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("cannot create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("cannot init screen: %v", err)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TicksPerSecond))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			sim.Step()
			draw(screen, sim.Snapshot(), cfg)
		}
	}
}

// draw maps arena coordinates onto the terminal cell grid. Radii are below
// a character cell at any sane terminal size, so each ball is one rune.
func draw(screen tcell.Screen, balls []simulation.BallState, cfg *simulation.Config) {
	screen.Clear()
	w, h := screen.Size()
	for _, b := range balls {
		x := int(b.Pos.X / cfg.ArenaWidth * float64(w))
		y := int(b.Pos.Y / cfg.ArenaHeight * float64(h))
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		st := ballStyle
		if b.Colliding {
			st = hitStyle
		}
		screen.SetContent(x, y, 'o', nil, st)
	}
	screen.Show()
}
