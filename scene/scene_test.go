package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/vmath"
)

func TestAdvanceOrbitAndGround(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	s.Advance(0.5, 0.5, 2)

	if math.Abs(s.CameraAngle-math.Pi/2) > 1e-9 {
		t.Errorf("Expected quarter orbit, got %f", s.CameraAngle)
	}
	if math.Abs(s.GroundAngle-1) > 1e-9 {
		t.Errorf("Expected ground angle 1 rad, got %f", s.GroundAngle)
	}
	if s.PortalPhase != 0.5 || s.Elapsed != 0.5 {
		t.Errorf("Expected portal phase and elapsed 0.5, got %f %f", s.PortalPhase, s.Elapsed)
	}

	cam := s.CameraPosition()
	if math.Abs(vmath.V3FMag(vmath.Vec3F{X: cam.X, Z: cam.Z})-parameter.CameraZ) > 1e-9 {
		t.Errorf("Expected camera on orbit circle, got %+v", cam)
	}
}

func TestFirefliesShimmerAroundBase(t *testing.T) {
	s := New(rand.New(rand.NewSource(2)))
	s.Reinitialize(50, 10)
	if len(s.Fireflies) != 50 {
		t.Fatalf("Expected 50 fireflies, got %d", len(s.Fireflies))
	}

	for i := 0; i < 100; i++ {
		s.Advance(0.05, 0, 0)
	}
	for _, f := range s.Fireflies {
		if math.Abs(f.Position.Y-f.Base.Y) > parameter.FireflyShimmerAmplitude+1e-12 {
			t.Errorf("Firefly drifted: base %f pos %f", f.Base.Y, f.Position.Y)
		}
		if math.Abs(f.Base.X) > 10 || math.Abs(f.Base.Z) > 10 {
			t.Errorf("Firefly outside spawn box: %+v", f.Base)
		}
	}

	s.Reinitialize(-1, 10)
	if len(s.Fireflies) != 0 {
		t.Errorf("Expected negative count to clear fireflies, got %d", len(s.Fireflies))
	}
}

func TestOverlays(t *testing.T) {
	s := New(rand.New(rand.NewSource(3)))
	a := s.AddOverlay(Overlay{Kind: OverlayBeam})
	b := s.AddOverlay(Overlay{Kind: OverlayRing, Radius: 2.5})

	if a == b {
		t.Error("Expected distinct overlay IDs")
	}
	if !s.RemoveOverlay(a) || s.RemoveOverlay(a) {
		t.Error("Expected single successful removal")
	}
	if len(s.Overlays) != 1 || s.Overlays[0].ID != b {
		t.Errorf("Unexpected overlays %+v", s.Overlays)
	}
}

func TestWandAimAndSwing(t *testing.T) {
	w := NewWand()
	if d := w.Direction(); math.Abs(d.Z+1) > 1e-9 {
		t.Errorf("Expected default aim -Z, got %+v", d)
	}

	w.Aim(0, 10)
	if w.Pitch != parameter.WandMaxPitch {
		t.Errorf("Expected pitch clamped to %f, got %f", parameter.WandMaxPitch, w.Pitch)
	}

	w.Swing()
	if !w.Swinging() {
		t.Fatal("Expected wand swinging")
	}
	w.Advance(parameter.WandSwingDuration / 2)
	if math.Abs(w.SwingAngle()-parameter.WandSwingAngle) > 1e-9 {
		t.Errorf("Expected peak swing mid-way, got %f", w.SwingAngle())
	}
	w.Advance(parameter.WandSwingDuration)
	if w.Swinging() || w.SwingAngle() != 0 {
		t.Error("Expected swing finished")
	}
}
