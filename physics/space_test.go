package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/magic-lab/vmath"
)

const fixed = 1.0 / 60.0

func newBareSpace() *Space {
	cfg := DefaultSpaceConfig()
	cfg.LinearDamping = 0
	cfg.AngularDamping = 0
	return NewSpace(cfg)
}

func TestSpaceAccumulator(t *testing.T) {
	s := newBareSpace()

	if err := s.Step(fixed, 0.01, 3); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if s.Substeps() != 0 {
		t.Errorf("Expected 0 substeps for partial frame, got %d", s.Substeps())
	}

	if err := s.Step(fixed, 0.01, 3); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if s.Substeps() != 1 {
		t.Errorf("Expected accumulated time to produce 1 substep, got %d", s.Substeps())
	}
}

func TestSpaceSubstepCap(t *testing.T) {
	s := newBareSpace()

	if err := s.Step(fixed, 1.0, 3); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if s.Substeps() != 3 {
		t.Errorf("Expected substeps capped at 3, got %d", s.Substeps())
	}
	if s.accumulator >= fixed || s.accumulator < 0 {
		t.Errorf("Expected remainder in [0, fixed), got %f", s.accumulator)
	}
}

func TestSpaceInvalidStep(t *testing.T) {
	s := newBareSpace()
	tests := []struct {
		name      string
		fixed, dt float64
	}{
		{"zero fixed", 0, 0.016},
		{"negative dt", fixed, -1},
		{"nan dt", fixed, math.NaN()},
		{"inf dt", fixed, math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.Step(tc.fixed, tc.dt, 3); !errors.Is(err, ErrInvalidStep) {
				t.Errorf("Expected ErrInvalidStep, got %v", err)
			}
		})
	}
}

func TestSpaceCreateBodyValidation(t *testing.T) {
	s := newBareSpace()

	if _, err := s.CreateBody(-1, Box(0.5), vmath.Vec3F{}); !errors.Is(err, ErrInvalidMass) {
		t.Errorf("Expected ErrInvalidMass, got %v", err)
	}
	if _, err := s.CreateBody(1, Sphere(0), vmath.Vec3F{}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape, got %v", err)
	}
	if s.BodyCount() != 0 {
		t.Errorf("Expected no bodies after failed creation, got %d", s.BodyCount())
	}
}

func TestSpaceRemoveBody(t *testing.T) {
	s := newBareSpace()
	id, err := s.CreateBody(1, Box(0.5), vmath.Vec3F{Y: 2})
	if err != nil {
		t.Fatalf("CreateBody failed: %v", err)
	}

	if !s.RemoveBody(id) {
		t.Error("Expected first removal to succeed")
	}
	if s.RemoveBody(id) {
		t.Error("Expected second removal to be a no-op")
	}
	if s.ApplyImpulse(id, vmath.Vec3F{Y: 1}, vmath.Vec3F{}) {
		t.Error("Expected impulse on removed body to report false")
	}
	if _, ok := s.State(id); ok {
		t.Error("Expected no state for removed body")
	}
}

func TestSpaceImpulseMovesBody(t *testing.T) {
	s := newBareSpace()
	id, _ := s.CreateBody(2, Box(0.5), vmath.Vec3F{Y: 3})

	s.ApplyImpulse(id, vmath.Vec3F{X: 4}, vmath.Vec3F{Y: 3})
	st, _ := s.State(id)
	if math.Abs(st.Velocity.X-2) > 1e-9 {
		t.Errorf("Expected velocity 2 (impulse/mass), got %f", st.Velocity.X)
	}

	if err := s.Step(fixed, fixed, 1); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	st, _ = s.State(id)
	if st.Position.X <= 0 {
		t.Errorf("Expected body to move along +X, got %+v", st.Position)
	}
	if math.Abs(st.Orientation.Len()-1) > 1e-9 {
		t.Errorf("Expected unit orientation, got len %f", st.Orientation.Len())
	}
}

func TestSpaceOffCentreImpulseSpins(t *testing.T) {
	s := newBareSpace()
	id, _ := s.CreateBody(1, Box(0.5), vmath.Vec3F{Y: 3})

	s.ApplyImpulse(id, vmath.Vec3F{X: 1}, vmath.Vec3F{Y: 3.5})
	s.Step(fixed, fixed*10, 10)

	st, _ := s.State(id)
	if math.Abs(st.Orientation.W-1) < 1e-6 {
		t.Errorf("Expected orientation to change, got %+v", st.Orientation)
	}
}

func TestSpaceStaticBodyIgnoresImpulse(t *testing.T) {
	s := newBareSpace()
	id, _ := s.CreateBody(0, Box(1), vmath.Vec3F{Y: 1})

	if !s.ApplyImpulse(id, vmath.Vec3F{X: 100}, vmath.Vec3F{}) {
		t.Error("Expected impulse on static body to report known handle")
	}
	s.Step(fixed, fixed, 1)
	st, _ := s.State(id)
	if st.Position != (vmath.Vec3F{Y: 1}) {
		t.Errorf("Expected static body to stay put, got %+v", st.Position)
	}
}

func TestSpaceGroundBounce(t *testing.T) {
	s := newBareSpace()
	id, _ := s.CreateBody(1, Box(0.5), vmath.Vec3F{Y: 0.6})
	s.ApplyImpulse(id, vmath.Vec3F{Y: -12}, vmath.Vec3F{Y: 0.6})

	if err := s.Step(fixed, fixed, 1); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	st, _ := s.State(id)
	if math.Abs(st.Position.Y-0.5) > 1e-9 {
		t.Errorf("Expected body resting on ground at 0.5, got %f", st.Position.Y)
	}
	if st.Velocity.Y <= 0 {
		t.Errorf("Expected upward velocity after bounce, got %f", st.Velocity.Y)
	}
	if s.Contacts() == 0 {
		t.Error("Expected ground contact to be counted")
	}
}

func TestSpacePairSeparation(t *testing.T) {
	s := newBareSpace()
	a, _ := s.CreateBody(1, Sphere(1), vmath.Vec3F{X: -0.5, Y: 5})
	b, _ := s.CreateBody(1, Sphere(1), vmath.Vec3F{X: 0.5, Y: 5})

	s.Step(fixed, fixed, 1)

	sa, _ := s.State(a)
	sb, _ := s.State(b)
	if d := vmath.V3FDist(sa.Position, sb.Position); d < 2 {
		t.Errorf("Expected overlapping spheres separated to >= 2, got %f", d)
	}
}

func TestSpaceGravity(t *testing.T) {
	cfg := DefaultSpaceConfig()
	cfg.Gravity = vmath.Vec3F{Y: -9.8}
	s := NewSpace(cfg)
	id, _ := s.CreateBody(1, Sphere(0.5), vmath.Vec3F{Y: 10})

	s.Step(fixed, 0.5, 30)
	st, _ := s.State(id)
	if st.Position.Y >= 10 {
		t.Errorf("Expected body to fall under gravity, got y=%f", st.Position.Y)
	}
}
