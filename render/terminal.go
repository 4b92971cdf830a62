package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/core"
	"github.com/lixenwraith/magic-lab/entity"
	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/parameter/visual"
	"github.com/lixenwraith/magic-lab/scene"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/status"
	"github.com/lixenwraith/magic-lab/vmath"
)

// ErrScreenTooSmall is returned when no rows are left for the scene after the HUD
var ErrScreenTooSmall = errors.New("screen too small")

// HUDKeys are the metrics shown on the first HUD row, in order
var HUDKeys = []string{
	"sim.frames",
	"sim.dt",
	"sim.time_scale",
	"entity.live",
	"projectile.live",
	"effect.particles",
	"spell.last",
	parameter.SelectedParamKey,
}

// HelpLine is the key help on the last HUD row
const HelpLine = "e:burst spc:bolt f:fire l:lightning r:frost arrows:aim 1-8:param +/-:tune R:reset q:quit"

var groundGlyphs = []rune("ᚠᚢᚦᚨᚱᚲᚷᚹ")

var lightDir = vmath.V3FNormalize(vmath.Vec3F{X: 0.4, Y: 1, Z: 0.3})

// Terminal renders the lab into a tcell screen
type Terminal struct {
	screen tcell.Screen
	buf    *Buffer
	proj   *Projector
	width  int
	height int
}

func NewTerminal(screen tcell.Screen) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen: screen,
		buf:    NewBuffer(w, h),
		proj:   NewProjector(w, max(h-parameter.HUDRows, 1), parameter.TerminalCellAspect),
		width:  w,
		height: h,
	}
}

// Render implements sim.Renderer
func (t *Terminal) Render(s *sim.State, metrics *status.Registry) error {
	w, h := t.screen.Size()
	if w != t.width || h != t.height {
		t.width, t.height = w, h
		t.buf.Resize(w, h)
		t.proj.Resize(w, max(h-parameter.HUDRows, 1))
	}
	viewH := h - parameter.HUDRows
	if w < 1 || viewH < 1 {
		return fmt.Errorf("%w: %dx%d", ErrScreenTooSmall, w, h)
	}

	t.buf.Clear()
	t.proj.LookFrom(s.Scene.CameraPosition())

	t.drawGround(s.Scene)
	t.drawFireflies(s.Scene)
	t.drawEntities(s.Entities.Live())
	t.drawProjectiles(s)
	t.drawEffects(s)
	t.drawOverlays(s.Scene.Overlays)
	t.drawWand(&s.Scene.Wand)
	t.drawHUD(s, metrics, viewH)

	t.buf.Flush(t.screen)
	return nil
}

// plot projects p and writes a glyph at its cell if in the scene area
func (t *Terminal) plot(p vmath.Vec3F, r rune, fg core.RGB) (x, y int, depth float64, ok bool) {
	fx, fy, depth, ok := t.proj.Project(p)
	if !ok {
		return 0, 0, 0, false
	}
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if y >= t.height-parameter.HUDRows {
		return x, y, depth, false
	}
	t.buf.Set(x, y, r, fg, depth)
	return x, y, depth, true
}

// circle samples a horizontal circle and plots each point
func (t *Terminal) circle(center vmath.Vec3F, radius, phase float64, samples int, r rune, fg core.RGB) {
	for i := 0; i < samples; i++ {
		a := phase + float64(i)*vmath.TwoPi/float64(samples)
		p := vmath.Vec3F{X: center.X + math.Cos(a)*radius, Y: center.Y, Z: center.Z + math.Sin(a)*radius}
		t.plot(p, r, fg)
	}
}

// segment plots evenly spaced points from a to b inclusive
func (t *Terminal) segment(a, b vmath.Vec3F, samples int, r rune, fg core.RGB) {
	if samples < 2 {
		samples = 2
	}
	for i := 0; i < samples; i++ {
		t.plot(vmath.V3FLerp(a, b, float64(i)/float64(samples-1)), r, fg)
	}
}

func (t *Terminal) drawGround(sc *scene.Scene) {
	half := parameter.GroundSize / 2
	t.circle(vmath.V3FZero, half, sc.GroundAngle, parameter.GroundRingSamples, '·', visual.GroundColor.Add(visual.GroundRuneColor.Scale(0.3)))

	for i := 0; i < parameter.GroundRunes; i++ {
		a := sc.GroundAngle + float64(i)*vmath.TwoPi/parameter.GroundRunes
		p := vmath.Vec3F{X: math.Cos(a) * half * parameter.GroundRuneInset, Z: math.Sin(a) * half * parameter.GroundRuneInset}
		t.plot(p, groundGlyphs[i%len(groundGlyphs)], visual.GroundRuneColor)
	}

	pulse := 0.6 + 0.4*math.Sin(sc.PortalPhase*parameter.PortalPulseRate)
	t.circle(vmath.V3FZero, parameter.PortalRadius, -sc.PortalPhase, parameter.PortalSamples, '~', visual.PortalColor.Scale(pulse))
	if x, y, _, ok := t.plot(vmath.V3FZero, ' ', visual.PortalColor); ok {
		t.buf.Glow(x, y, visual.PortalColor.Scale(pulse*0.5))
	}
}

func (t *Terminal) drawFireflies(sc *scene.Scene) {
	for _, f := range sc.Fireflies {
		blink := 0.5 + 0.5*math.Sin(sc.Elapsed*3+f.Phase)
		t.plot(f.Position, '∙', visual.FireflyColor.Scale(blink))
	}
}

func kindStyle(k entity.Kind) (rune, core.RGB) {
	switch k {
	case entity.KindBook:
		return '▓', visual.BookColor
	case entity.KindTarget:
		return '◉', visual.TargetColor
	case entity.KindFragment:
		return '▪', visual.FragmentColor
	default:
		return '█', visual.BoxColor
	}
}

// drawEntities fills each entity's projected bounding ellipse, lit by its orientation
func (t *Terminal) drawEntities(live []*entity.Entity) {
	viewH := t.height - parameter.HUDRows
	for _, e := range live {
		cx, cy, depth, ok := t.proj.Project(e.Visual.Position)
		if !ok {
			continue
		}
		glyph, base := kindStyle(e.Kind)

		up := vmath.Rotate(e.Visual.Orientation, vmath.V3FUp)
		light := 0.6 + 0.4*math.Abs(vmath.V3FDot(up, lightDir))
		fade := 1 - vmath.Clamp01((depth-parameter.DepthFadeStart)/parameter.DepthFadeRange)*0.5
		fg := base.Scale(light * fade)

		rx, ry := t.proj.Radius(e.HalfExtent, depth)
		if rx < 0.5 || ry < 0.5 {
			if cy < float64(viewH) {
				t.buf.Set(int(math.Floor(cx)), int(math.Floor(cy)), glyph, fg, depth)
			}
			continue
		}

		minX := max(0, int(cx-rx))
		maxX := min(t.width-1, int(cx+rx))
		minY := max(0, int(cy-ry))
		maxY := min(viewH-1, int(cy+ry))
		for sy := minY; sy <= maxY; sy++ {
			for sx := minX; sx <= maxX; sx++ {
				nx := (float64(sx) + 0.5 - cx) / rx
				ny := (float64(sy) + 0.5 - cy) / ry
				d := nx*nx + ny*ny
				if d > 1 {
					continue
				}
				c := fg
				if d > 0.7 {
					c = fg.Scale(0.7)
				}
				t.buf.Set(sx, sy, glyph, c, depth)
			}
		}
	}
}

func (t *Terminal) drawProjectiles(s *sim.State) {
	for _, p := range s.Projectiles.Live() {
		if x, y, _, ok := t.plot(p.Position, '●', p.Color); ok {
			t.buf.Glow(x, y, p.Color.Scale(0.3))
		}
	}
}

func (t *Terminal) drawEffects(s *sim.State) {
	for _, e := range s.Effects.Live() {
		fade := 1.0
		if e.TTL > 0 {
			fade = 1 - vmath.Clamp01(e.Age/e.TTL)
		}
		glyph := '·'
		if e.Size >= 0.5 {
			glyph = '*'
		}
		fg := e.Color.Scale(0.3 + 0.7*fade)
		for _, p := range e.Positions {
			t.plot(p, glyph, fg)
		}
	}
}

func (t *Terminal) drawOverlays(overlays []scene.Overlay) {
	for _, o := range overlays {
		switch o.Kind {
		case scene.OverlayBeam:
			t.segment(o.From, o.To, parameter.OverlaySamples, '+', o.Color)
		case scene.OverlayRing:
			t.circle(o.From, o.Radius, 0, parameter.OverlaySamples, 'o', o.Color)
		}
	}
}

func (t *Terminal) drawWand(w *scene.Wand) {
	tip := w.Tip()
	dir := w.Direction()
	swing := w.SwingAngle()
	shown := vmath.V3FAddScaled(tip, dir, swing)
	base := vmath.V3FAddScaled(vmath.Vec3F{X: tip.X, Y: tip.Y - parameter.WandLength, Z: tip.Z}, dir, -0.3)
	t.segment(base, shown, 6, '|', visual.WandColor.Add(visual.WandColor))
	if x, y, _, ok := t.plot(shown, '✦', visual.WandTipColor); ok {
		t.buf.Glow(x, y, visual.WandTipColor.Scale(0.25))
	}
}

func (t *Terminal) drawHUD(s *sim.State, metrics *status.Registry, viewH int) {
	t.buf.WriteString(1, viewH, FormatMetrics(metrics), visual.HUDAccentColor)
	t.buf.WriteString(1, viewH+1, FormatParams(s), visual.HUDColor)
	t.buf.WriteString(1, viewH+2, HelpLine, visual.HUDColor.Scale(0.7))
}

// FormatMetrics renders HUDKeys as key=value pairs; missing keys are skipped
func FormatMetrics(metrics *status.Registry) string {
	if metrics == nil {
		return ""
	}
	values := make(map[string]string)
	for _, m := range metrics.Snapshot() {
		values[m.Key] = m.Value
	}
	parts := make([]string, 0, len(HUDKeys))
	for _, k := range HUDKeys {
		if v, ok := values[k]; ok && v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, "  ")
}

// FormatParams renders the current tunable parameters in declaration order
func FormatParams(s *sim.State) string {
	p := s.Params
	return fmt.Sprintf("1:n=%d 2:r=%.1f 3:particles=%d 4:strength=%.1f 5:orbit=%.2f 6:ground=%.2f 7:time=%.2f 8:fireflies=%d",
		p.EntityCount, p.SpawnRadius, p.ParticleCount, p.ExplosionStrength,
		p.OrbitSpeed, p.GroundSpeed, p.TimeScale, p.FireflyCount)
}
