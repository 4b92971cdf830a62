// Package window renders the lab in a desktop window with ebiten
package window

import (
	"cmp"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/engine"
	"github.com/lixenwraith/magic-lab/entity"
	"github.com/lixenwraith/magic-lab/input"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/parameter/visual"
	"github.com/lixenwraith/magic-lab/render"
	"github.com/lixenwraith/magic-lab/scene"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/vmath"
)

const hudLines = parameter.HUDRows

// Game adapts the orchestrator to ebiten's Update/Draw/Layout loop
type Game struct {
	o       *sim.Orchestrator
	machine *input.Machine
	keys    map[chord]input.KeyEntry
	clock   engine.TimeProvider
	start   time.Time
	log     *slog.Logger

	proj *render.Projector
	face font.Face

	width, height int

	pressed []ebiten.Key
	order   []*entity.Entity
}

func New(o *sim.Orchestrator, machine *input.Machine, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	clock := engine.NewMonotonicTimeProvider()
	return &Game{
		o:       o,
		machine: machine,
		keys:    chordTable(input.DefaultKeyTable()),
		clock:   clock,
		start:   clock.Now(),
		log:     log,
		proj:    render.NewProjector(parameter.WindowWidth, parameter.WindowHeight-hudLines*parameter.WindowHUDLineHeight, 1),
		face:    basicfont.Face7x13,
		width:   parameter.WindowWidth,
		height:  parameter.WindowHeight,
	}
}

// Update applies input then advances one frame; returns ebiten.Termination on quit
func (g *Game) Update() error {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		entry, ok := g.keys[chord{Key: k, Shift: shift, Ctrl: ctrl}]
		if !ok || entry.Behavior == input.BehaviorAim {
			continue
		}
		cmd, ok := g.machine.Resolve(entry)
		if !ok {
			continue
		}
		if cmd.Kind == sim.CmdQuit {
			return ebiten.Termination
		}
		if err := g.o.Apply(cmd); err != nil {
			g.log.Warn("command failed", "kind", cmd.Kind, "error", err)
		}
	}

	// Aim keys steer continuously while held
	var yaw, pitch float64
	scale := parameter.WindowAimRate / parameter.AimStep / float64(ebiten.TPS())
	for c, e := range g.keys {
		if e.Behavior != input.BehaviorAim || c.Shift != shift || c.Ctrl != ctrl || !ebiten.IsKeyPressed(c.Key) {
			continue
		}
		yaw += e.Yaw * scale
		pitch += e.Pitch * scale
	}
	if yaw != 0 || pitch != 0 {
		g.o.Apply(sim.Aim(yaw, pitch))
	}

	g.o.Frame(engine.MillisSince(g.clock, g.start))
	return nil
}

func rgba(c core.RGB, a float64) color.RGBA {
	return c.Premultiplied(a)
}

func (g *Game) project(p vmath.Vec3F) (float32, float32, float64, bool) {
	x, y, depth, ok := g.proj.Project(p)
	return float32(x), float32(y), depth, ok
}

func (g *Game) dot(dst *ebiten.Image, p vmath.Vec3F, r float32, c color.Color) {
	if x, y, _, ok := g.project(p); ok {
		vector.DrawFilledCircle(dst, x, y, r, c, true)
	}
}

func (g *Game) line(dst *ebiten.Image, a, b vmath.Vec3F, width float32, c color.Color) {
	ax, ay, _, okA := g.project(a)
	bx, by, _, okB := g.project(b)
	if okA && okB {
		vector.StrokeLine(dst, ax, ay, bx, by, width, c, true)
	}
}

// ring strokes a horizontal circle as a closed polyline
func (g *Game) ring(dst *ebiten.Image, center vmath.Vec3F, radius, phase float64, samples int, width float32, c color.Color) {
	point := func(i int) vmath.Vec3F {
		a := phase + float64(i)*vmath.TwoPi/float64(samples)
		return vmath.Vec3F{X: center.X + math.Cos(a)*radius, Y: center.Y, Z: center.Z + math.Sin(a)*radius}
	}
	for i := 0; i < samples; i++ {
		g.line(dst, point(i), point(i+1), width, c)
	}
}

// Draw paints the scene back to front, then the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.o.State()
	screen.Fill(color.Black)
	g.proj.LookFrom(s.Scene.CameraPosition())

	g.drawGround(screen, s.Scene)
	for _, f := range s.Scene.Fireflies {
		blink := 0.5 + 0.5*math.Sin(s.Scene.Elapsed*3+f.Phase)
		g.dot(screen, f.Position, 1.5, rgba(visual.FireflyColor, blink))
	}
	g.drawEntities(screen, s.Entities.Live())
	for _, p := range s.Projectiles.Live() {
		if x, y, depth, ok := g.project(p.Position); ok {
			_, r := g.proj.Radius(p.Size, depth)
			vector.DrawFilledCircle(screen, x, y, float32(max(r*2, 3)), rgba(p.Color, 0.3), true)
			vector.DrawFilledCircle(screen, x, y, float32(max(r, 2)), rgba(p.Color, 1), true)
		}
	}
	g.drawEffects(screen, s)
	for _, o := range s.Scene.Overlays {
		switch o.Kind {
		case scene.OverlayBeam:
			g.line(screen, o.From, o.To, 3, rgba(o.Color, 1))
		case scene.OverlayRing:
			g.ring(screen, o.From, o.Radius, 0, parameter.OverlaySamples, 2, rgba(o.Color, 0.8))
		}
	}
	g.drawWand(screen, &s.Scene.Wand)
	g.drawHUD(screen, s)
}

func (g *Game) drawGround(dst *ebiten.Image, sc *scene.Scene) {
	half := parameter.GroundSize / 2
	g.ring(dst, vmath.V3FZero, half, sc.GroundAngle, parameter.GroundRingSamples, 1, rgba(visual.GroundColor.Add(visual.GroundRuneColor.Scale(0.3)), 1))
	for i := 0; i < parameter.GroundRunes; i++ {
		a := sc.GroundAngle + float64(i)*vmath.TwoPi/parameter.GroundRunes
		p := vmath.Vec3F{X: math.Cos(a) * half * parameter.GroundRuneInset, Z: math.Sin(a) * half * parameter.GroundRuneInset}
		g.dot(dst, p, 3, rgba(visual.GroundRuneColor, 1))
	}
	pulse := 0.6 + 0.4*math.Sin(sc.PortalPhase*parameter.PortalPulseRate)
	g.ring(dst, vmath.V3FZero, parameter.PortalRadius, -sc.PortalPhase, parameter.PortalSamples, 2, rgba(visual.PortalColor, pulse))
}

// drawEntities uses the painter's algorithm: farthest first
func (g *Game) drawEntities(dst *ebiten.Image, live []*entity.Entity) {
	g.order = append(g.order[:0], live...)
	eye := g.o.State().Scene.CameraPosition()
	slices.SortFunc(g.order, func(a, b *entity.Entity) int {
		return cmp.Compare(
			vmath.V3FDistSq(b.Visual.Position, eye),
			vmath.V3FDistSq(a.Visual.Position, eye),
		)
	})

	for _, e := range g.order {
		x, y, depth, ok := g.project(e.Visual.Position)
		if !ok {
			continue
		}
		base := visual.BoxColor
		switch e.Kind {
		case entity.KindBook:
			base = visual.BookColor
		case entity.KindTarget:
			base = visual.TargetColor
		case entity.KindFragment:
			base = visual.FragmentColor
		}
		up := vmath.Rotate(e.Visual.Orientation, vmath.V3FUp)
		light := 0.6 + 0.4*math.Abs(up.Y)
		fade := 1 - vmath.Clamp01((depth-parameter.DepthFadeStart)/parameter.DepthFadeRange)*0.5
		_, r := g.proj.Radius(e.HalfExtent, depth)
		vector.DrawFilledCircle(dst, x, y, float32(max(r, 1)), rgba(base.Scale(light*fade), 1), true)
		vector.StrokeCircle(dst, x, y, float32(max(r, 1)), 1, rgba(base.Scale(0.5), 1), true)
	}
}

func (g *Game) drawEffects(dst *ebiten.Image, s *sim.State) {
	for _, e := range s.Effects.Live() {
		fade := 1.0
		if e.TTL > 0 {
			fade = 1 - vmath.Clamp01(e.Age/e.TTL)
		}
		c := rgba(e.Color, 0.3+0.7*fade)
		for _, p := range e.Positions {
			if x, y, depth, ok := g.project(p); ok {
				_, r := g.proj.Radius(e.Size*0.1, depth)
				vector.DrawFilledCircle(dst, x, y, float32(max(r, 1)), c, false)
			}
		}
	}
}

func (g *Game) drawWand(dst *ebiten.Image, w *scene.Wand) {
	tip := w.Tip()
	dir := w.Direction()
	shown := vmath.V3FAddScaled(tip, dir, w.SwingAngle())
	base := vmath.V3FAddScaled(vmath.Vec3F{X: tip.X, Y: tip.Y - parameter.WandLength, Z: tip.Z}, dir, -0.3)
	g.line(dst, base, shown, 4, rgba(visual.WandColor, 1))
	g.dot(dst, shown, 6, rgba(visual.WandTipColor, 0.35))
	g.dot(dst, shown, 3, rgba(visual.WandTipColor, 1))
}

func (g *Game) drawHUD(dst *ebiten.Image, s *sim.State) {
	lh := parameter.WindowHUDLineHeight
	top := g.height - hudLines*lh
	vector.DrawFilledRect(dst, 0, float32(top), float32(g.width), float32(hudLines*lh), color.RGBA{A: 200}, false)

	lines := []struct {
		s string
		c core.RGB
	}{
		{render.FormatMetrics(g.o.Metrics()), visual.HUDAccentColor},
		{render.FormatParams(s), visual.HUDColor},
		{render.HelpLine, visual.HUDColor.Scale(0.7)},
	}
	for i, l := range lines {
		text.Draw(dst, l.s, g.face, 8, top+(i+1)*lh-4, rgba(l.c, 1))
	}
}

// Layout tracks the window size; the scene keeps the area above the HUD
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.proj.Resize(outsideWidth, max(outsideHeight-hudLines*parameter.WindowHUDLineHeight, 1))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes or a quit key is pressed
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
