package sim

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/magic-lab/event"
)

// NewLogHandler writes every dispatched event to log
// Physics faults log at warn, the rest at debug
func NewLogHandler(log *slog.Logger) event.Handler[*State] {
	return event.HandlerFunc[*State]{
		Types: event.AllTypes(),
		Fn: func(s *State, ev event.GameEvent) {
			lvl := slog.LevelDebug
			if ev.Type == event.EventPhysicsFault {
				lvl = slog.LevelWarn
			}
			log.Log(context.Background(), lvl, ev.Type.String(), "frame", ev.Frame, "payload", ev.Payload)
		},
	}
}
