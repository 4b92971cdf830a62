package sim

import (
	"github.com/lixenwraith/magic-lab/config"
	"github.com/lixenwraith/magic-lab/effect"
	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/entity"
	"github.com/lixenwraith/magic-lab/projectile"
	"github.com/lixenwraith/magic-lab/scene"
	"github.com/lixenwraith/magic-lab/status"
)

// State is everything the orchestrator owns, handed read-only to renderers
type State struct {
	Clock       *engine.Clock
	Effects     *effect.Pool
	Projectiles *projectile.Set
	Entities    *entity.Registry
	Scene       *scene.Scene
	Params      config.Params
	Frame       int64
}

// Renderer draws one frame; errors are logged and the loop continues
type Renderer interface {
	Render(s *State, metrics *status.Registry) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(s *State, metrics *status.Registry) error

func (f RendererFunc) Render(s *State, metrics *status.Registry) error {
	return f(s, metrics)
}

// FrameStats summarizes one frame for callers and tests
type FrameStats struct {
	RawDt          float64
	Dt             float64
	Hits           int
	Expired        int
	EffectsRemoved int
	Fragments      int
	TimersFired    int
	PhysicsErr     error
}
