package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-balls-simulation/pkg/simulation"
	"go.uber.org/zap"
)

func main() {
	var (
		configFile = flag.String("config", "", "JSON config file, validated against -schema (optional)")
		schemaFile = flag.String("schema", "config.schema.json", "JSON schema used to validate -config")
		ballCount  = flag.Int("n", 0, "number of balls (overrides config)")
		ballRadius = flag.Float64("r", 0, "ball radius (overrides config)")
		seed       = flag.Uint64("seed", 0, "RNG seed; 0 seeds from the clock")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("cannot create logger: %v", err)
	}
	defer logger.Sync()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		cfg, err = simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			logger.Fatal("cannot load config", zap.Error(err))
		}
	}
	if *ballCount > 0 {
		cfg.BallCount = *ballCount
	}
	if *ballRadius > 0 {
		cfg.BallRadius = *ballRadius
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	sim, err := simulation.New(cfg, logger)
	if err != nil {
		logger.Fatal("cannot create simulation", zap.Error(err))
	}

	ebiten.SetWindowSize(int(cfg.ArenaWidth), int(cfg.ArenaHeight))
	ebiten.SetWindowTitle("Bouncy Balls")
	ebiten.SetTPS(cfg.TicksPerSecond)

	if err := ebiten.RunGame(simulation.GetNewGame(sim, cfg)); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
