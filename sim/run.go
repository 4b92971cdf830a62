package sim

import (
	"context"
	"errors"

	"github.com/lixenwraith/magic-lab/engine"
)

// Run drives frames from src until ctx is cancelled, src is exhausted or a quit command arrives
// Pending commands are applied before each frame; render errors are logged and counted
// Returns nil on exhaustion or quit, ctx.Err() on cancellation
func (o *Orchestrator) Run(ctx context.Context, src engine.FrameSource, cmds <-chan Command, r Renderer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		stamp, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, engine.ErrSourceExhausted) {
				return nil
			}
			return err
		}

		quit := false
	drain:
		for cmds != nil {
			select {
			case cmd, ok := <-cmds:
				if !ok {
					cmds = nil
					break drain
				}
				if cmd.Kind == CmdQuit {
					quit = true
					break drain
				}
				if err := o.Apply(cmd); err != nil {
					o.log.Warn("command failed", "kind", cmd.Kind, "error", err)
				}
			default:
				break drain
			}
		}
		if quit {
			return nil
		}

		o.Frame(stamp)

		if r != nil {
			if err := r.Render(&o.state, o.metrics); err != nil {
				o.m.renderErrs.Add(1)
				o.log.Warn("render failed", "frame", o.state.Frame, "error", err)
			}
		}
	}
}
