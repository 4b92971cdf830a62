package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/magic-lab/audio"
	"github.com/lixenwraith/magic-lab/config"
	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/input"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/render"
	"github.com/lixenwraith/magic-lab/service"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/status"
	"github.com/lixenwraith/magic-lab/vmath"
)

func main() {
	// Restore the terminal before printing anything if the main goroutine panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "magic-lab: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("magic-lab", args)
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
	log.Info("simulation ready", "seed", seed, "entities", cfg.Params.EntityCount)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio
	player := audio.NewPlayer(audioCfg, nil)

	hub := service.NewHub()
	screenSvc := render.NewScreenService(nil)
	if err := hub.Register(screenSvc); err != nil {
		return err
	}
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen := screenSvc.Screen()
	machine := input.NewMachine(input.DefaultKeyTable(), metrics)
	cmds := make(chan sim.Command, parameter.CommandBufferSize)

	core.Go(func() { pollInput(ctx, screen, machine, cmds) })

	src := engine.NewTickerSource(engine.NewMonotonicTimeProvider(), time.Second/time.Duration(cfg.FPS))
	defer src.Stop()

	err = o.Run(ctx, src, cmds, render.NewTerminal(screen))
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info("exit", "frames", o.State().Frame, "error", err)
	return err
}

// pollInput forwards mapped key commands until the screen closes or ctx ends
func pollInput(ctx context.Context, screen tcell.Screen, m *input.Machine, cmds chan<- sim.Command) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		cmd, ok := m.HandleEvent(ev)
		if !ok {
			continue
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
