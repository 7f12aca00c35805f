//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"evo-ca/internal/app"
	_ "evo-ca/internal/sims/evolife"
	_ "evo-ca/internal/sims/life"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ca"})

	sim, err := cfg.NewSim()
	if err != nil {
		logger.Fatal("building simulation", "err", err)
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "size", size, "tps", cfg.TPS)

	ebiten.SetWindowTitle("evo-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("running game", "err", err)
	}
}
