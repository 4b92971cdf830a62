package render

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/config"
	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/effect"
	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/entity"
	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/projectile"
	"github.com/lixenwraith/magic-lab/scene"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/status"
	"github.com/lixenwraith/magic-lab/vmath"
)

func TestBufferDepthTest(t *testing.T) {
	b := NewBuffer(4, 2)
	red := core.RGB{R: 255}
	blue := core.RGB{B: 255}

	if !b.Set(1, 1, 'a', red, 5) {
		t.Fatal("Expected first write to land")
	}
	if b.Set(1, 1, 'b', blue, 7) {
		t.Error("Expected farther glyph to be rejected")
	}
	if !b.Set(1, 1, 'c', blue, 3) {
		t.Error("Expected nearer glyph to replace")
	}
	if c := b.Get(1, 1); c.Rune != 'c' || c.Fg != blue {
		t.Errorf("Expected 'c' in blue, got %q %+v", c.Rune, c.Fg)
	}
	if b.Set(9, 0, 'x', red, 0) {
		t.Error("Expected out of bounds write to be ignored")
	}

	b.WriteString(0, 1, "hud", red)
	if c := b.Get(1, 1); c.Rune != 'u' {
		t.Errorf("Expected HUD text over scene, got %q", c.Rune)
	}

	b.Clear()
	if c := b.Get(1, 1); c.Rune != ' ' || !math.IsInf(c.Depth, 1) {
		t.Errorf("Expected cleared cell, got %+v", c)
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, 0, 'a', core.RGBWhite, 1)
	b.Resize(3, 1)
	if w, h := b.Size(); w != 3 || h != 1 {
		t.Errorf("Expected 3x1, got %dx%d", w, h)
	}
	if c := b.Get(0, 0); c.Rune != ' ' {
		t.Errorf("Expected resize to clear, got %q", c.Rune)
	}
	b.Resize(-1, 5)
	if w, h := b.Size(); w != 0 || h != 5 {
		t.Errorf("Expected 0x5, got %dx%d", w, h)
	}
}

func TestProjectorCentre(t *testing.T) {
	p := NewProjector(80, 40, 2)
	x, y, depth, ok := p.Project(vmath.V3FZero)
	if !ok {
		t.Fatal("Expected origin to be in front of the camera")
	}
	if math.Abs(x-40) > 1e-6 || math.Abs(y-20) > 1e-6 {
		t.Errorf("Expected origin at screen centre, got (%f, %f)", x, y)
	}
	if want := math.Sqrt(125); math.Abs(depth-want) > 1e-6 {
		t.Errorf("Expected depth %f, got %f", want, depth)
	}

	_, above, _, _ := p.Project(vmath.Vec3F{Y: 1})
	if above >= y {
		t.Errorf("Expected a raised point higher on screen, got y=%f vs %f", above, y)
	}
	right, _, _, _ := p.Project(vmath.Vec3F{X: 1})
	if right <= x {
		t.Errorf("Expected +X to the right, got x=%f vs %f", right, x)
	}
}

func TestProjectorBehindCamera(t *testing.T) {
	p := NewProjector(80, 40, 2)
	if _, _, _, ok := p.Project(vmath.Vec3F{Y: 10, Z: 20}); ok {
		t.Error("Expected point behind the camera to be rejected")
	}
}

func TestProjectorRadiusAspect(t *testing.T) {
	p := NewProjector(80, 40, 2)
	rx, ry := p.Radius(1, 10)
	if ry <= 0 || math.Abs(rx-2*ry) > 1e-9 {
		t.Errorf("Expected rx = 2*ry, got rx=%f ry=%f", rx, ry)
	}
	if rx, ry := p.Radius(1, 0); rx != 0 || ry != 0 {
		t.Errorf("Expected zero radius at the eye, got %f %f", rx, ry)
	}
}

func TestProjectorOrbit(t *testing.T) {
	p := NewProjector(80, 40, 1)
	p.LookFrom(vmath.RotateAboutY(vmath.Vec3F{Y: 5, Z: 10}, math.Pi/2))
	x, y, _, ok := p.Project(vmath.V3FZero)
	if !ok || math.Abs(x-40) > 1e-6 || math.Abs(y-20) > 1e-6 {
		t.Errorf("Expected origin centred after orbit, got (%f, %f, %v)", x, y, ok)
	}
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newState() *sim.State {
	rng := rand.New(rand.NewSource(1))
	return &sim.State{
		Clock:       engine.NewClock(),
		Effects:     effect.NewPool(rng),
		Projectiles: projectile.NewSet(),
		Entities:    entity.NewRegistry(physics.NewSpace(physics.DefaultSpaceConfig()), rng),
		Scene:       scene.New(rng),
		Params:      config.DefaultParams(),
	}
}

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteString(string(cells[y*w+x].Runes))
	}
	return sb.String()
}

func TestTerminalRenderHUD(t *testing.T) {
	screen := newScreen(t, 120, 30)
	metrics := status.NewRegistry()
	metrics.Ints.Get("entity.live").Store(7)
	metrics.Strings.Get("spell.last").Store("frost")

	term := NewTerminal(screen)
	if err := term.Render(newState(), metrics); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if row := screenRow(screen, 27); !strings.Contains(row, "entity.live=7") || !strings.Contains(row, "spell.last=frost") {
		t.Errorf("Expected metrics row, got %q", row)
	}
	if row := screenRow(screen, 28); !strings.Contains(row, "1:n=10") {
		t.Errorf("Expected params row, got %q", row)
	}
	if row := screenRow(screen, 29); !strings.Contains(row, "e:burst") {
		t.Errorf("Expected help row, got %q", row)
	}
}

func TestTerminalRenderProjectile(t *testing.T) {
	screen := newScreen(t, 80, 30)
	s := newState()
	s.Projectiles.Spawn(vmath.V3FZero, vmath.V3FFwd, 0, 1, projectile.None())

	term := NewTerminal(screen)
	if err := term.Render(s, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	cells, w, _ := screen.GetContents()
	found := false
	for i, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == '●' {
			x, y := i%w, i/w
			if x < 39 || x > 41 || y < 12 || y > 14 {
				t.Errorf("Expected projectile near centre, found at (%d, %d)", x, y)
			}
			found = true
		}
	}
	if !found {
		t.Error("Expected projectile glyph on screen")
	}
}

func TestTerminalTooSmall(t *testing.T) {
	screen := newScreen(t, 20, 2)
	term := NewTerminal(screen)
	if err := term.Render(newState(), nil); !errors.Is(err, ErrScreenTooSmall) {
		t.Errorf("Expected ErrScreenTooSmall, got %v", err)
	}
}

func TestTerminalResize(t *testing.T) {
	screen := newScreen(t, 40, 10)
	term := NewTerminal(screen)
	s := newState()
	if err := term.Render(s, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	screen.SetSize(60, 20)
	if err := term.Render(s, nil); err != nil {
		t.Fatalf("Render after resize: %v", err)
	}
	if w, h := term.buf.Size(); w != 60 || h != 20 {
		t.Errorf("Expected buffer to follow screen size, got %dx%d", w, h)
	}
}

func TestScreenServiceLifecycle(t *testing.T) {
	fake := tcell.NewSimulationScreen("UTF-8")
	svc := NewScreenService(func() (tcell.Screen, error) { return fake, nil })

	if svc.Screen() != nil {
		t.Error("Expected no screen before Init")
	}
	if err := svc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if svc.Screen() == nil {
		t.Fatal("Expected a screen after Init")
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := svc.Stop(); err != nil || svc.Screen() != nil {
		t.Errorf("Expected idempotent Stop, got %v", err)
	}
}

func TestScreenServiceFactoryError(t *testing.T) {
	boom := errors.New("no tty")
	svc := NewScreenService(func() (tcell.Screen, error) { return nil, boom })
	if err := svc.Init(); !errors.Is(err, boom) {
		t.Errorf("Expected factory error, got %v", err)
	}
}
