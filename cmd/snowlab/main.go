//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"snowlab/internal/app"
	"snowlab/internal/config"
	"snowlab/internal/core"
	_ "snowlab/internal/sims/reiter"
	_ "snowlab/internal/sims/stochastic"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	simName := cfg.Sim
	overrides := map[string]string{}
	if cfg.Preset != "" {
		preset, err := config.Load(cfg.Preset)
		if err != nil {
			logger.Fatal().Err(err).Msg("load preset")
		}
		for k, v := range preset.Values {
			overrides[k] = v
		}
		if preset.Sim != "" {
			simName = preset.Sim
		}
	}
	if cfg.Size > 0 {
		overrides["size"] = strconv.Itoa(cfg.Size)
	}

	factory, ok := core.Sims()[simName]
	if !ok {
		logger.Fatal().Str("sim", simName).Msg("unknown sim")
	}
	sim, err := factory(overrides)
	if err != nil {
		logger.Fatal().Err(err).Msg("construct sim")
	}
	if attacher, ok := sim.(core.LoggerAttacher); ok {
		attacher.AttachLogger(logger)
	}
	sim.Reset(cfg.Seed)
	logger.Info().Str("sim", sim.Name()).Int("size", sim.Size().W).Msg("ready: Space grows, R resets, 1 toggles vapor")

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.Repeat)
	size := sim.Size()
	ebiten.SetWindowTitle("snowlab: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("run")
	}
}
