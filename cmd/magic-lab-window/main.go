package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/magic-lab/audio"
	"github.com/lixenwraith/magic-lab/config"
	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/input"
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/render/window"
	"github.com/lixenwraith/magic-lab/service"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/status"
	"github.com/lixenwraith/magic-lab/vmath"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "magic-lab-window: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("magic-lab-window", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spaceCfg := physics.DefaultSpaceConfig()
	spaceCfg.Gravity = vmath.Vec3F{Y: -cfg.Gravity}
	metrics := status.NewRegistry()

	o, err := sim.New(sim.Options{
		World:         physics.NewSpace(spaceCfg),
		Params:        cfg.Params,
		MaxFrameDelta: cfg.MaxFrameDelta,
		Seed:          seed,
		Logger:        log,
		Status:        metrics,
	})
	if err != nil {
		return err
	}

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio
	player := audio.NewPlayer(audioCfg, nil)

	hub := service.NewHub()
	if err := hub.Register(audio.NewService(player, log)); err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			log.Warn("shutdown", "error", err)
		}
	}()

	o.Register(audio.NewCueHandler[*sim.State](player))
	o.Register(sim.NewLogHandler(log))

	g := window.New(o, input.NewMachine(input.DefaultKeyTable(), metrics), log)
	log.Info("window ready", "seed", seed)
	return window.Run(g, "magic-lab")
}
