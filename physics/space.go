package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/vmath"
)

// SpaceConfig holds world-wide integration settings
type SpaceConfig struct {
	Gravity           vmath.Vec3F
	LinearDamping     float64
	AngularDamping    float64
	Ground            bool
	GroundRestitution float64
	BodyRestitution   float64
	ContactMargin     float64
}

// DefaultSpaceConfig returns the lab setup: no gravity, light damping, ground plane at y=0
func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		LinearDamping:     parameter.PhysicsLinearDamping,
		AngularDamping:    parameter.PhysicsAngularDamping,
		Ground:            true,
		GroundRestitution: parameter.GroundRestitution,
		BodyRestitution:   parameter.BodyRestitution,
		ContactMargin:     parameter.ContactMargin,
	}
}

type body struct {
	id         BodyID
	shape      Shape
	radius     float64
	invMass    float64
	invInertia float64
	pos        vmath.Vec3F
	vel        vmath.Vec3F
	angVel     vmath.Vec3F
	orient     mgl64.Quat
}

// Space is the in-process rigid-body World
// Bodies are bounding spheres for pair contacts; boxes use their rotated extent against the ground
// Not safe for concurrent use; the frame loop owns it
type Space struct {
	cfg         SpaceConfig
	bodies      map[BodyID]*body
	order       []*body
	accumulator float64
	substeps    uint64
	contacts    uint64
}

// NewSpace creates an empty world
func NewSpace(cfg SpaceConfig) *Space {
	return &Space{
		cfg:    cfg,
		bodies: make(map[BodyID]*body),
	}
}

func (s *Space) CreateBody(mass float64, shape Shape, position vmath.Vec3F) (BodyID, error) {
	if mass < 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return uuid.Nil, fmt.Errorf("create body mass %v: %w", mass, ErrInvalidMass)
	}
	radius := shape.BoundingRadius()
	if !(radius > 0) || math.IsInf(radius, 0) {
		return uuid.Nil, fmt.Errorf("create body radius %v: %w", radius, ErrInvalidShape)
	}
	if !vmath.V3FIsFinite(position) {
		return uuid.Nil, fmt.Errorf("create body position %+v: %w", position, ErrInvalidShape)
	}

	b := &body{
		id:     uuid.New(),
		shape:  shape,
		radius: radius,
		pos:    position,
		orient: vmath.QuatIdent(),
	}
	if mass > 0 {
		b.invMass = 1 / mass
		b.invInertia = 1 / inertia(mass, shape)
	}

	s.bodies[b.id] = b
	s.order = append(s.order, b)
	return b.id, nil
}

// inertia returns a scalar moment; exact for spheres and cubes
func inertia(mass float64, shape Shape) float64 {
	if shape.Kind == ShapeSphere {
		return 0.4 * mass * shape.Radius * shape.Radius
	}
	return mass * vmath.V3FMagSq(shape.HalfExtent) * 2 / 9
}

func (s *Space) RemoveBody(id BodyID) bool {
	b, ok := s.bodies[id]
	if !ok {
		return false
	}
	delete(s.bodies, id)
	for i, ob := range s.order {
		if ob == b {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Space) ApplyImpulse(id BodyID, impulse, atPoint vmath.Vec3F) bool {
	b, ok := s.bodies[id]
	if !ok {
		return false
	}
	if b.invMass == 0 || !vmath.V3FIsFinite(impulse) {
		return true
	}

	b.vel = vmath.V3FAddScaled(b.vel, impulse, b.invMass)

	if vmath.V3FIsFinite(atPoint) {
		arm := vmath.V3FSub(atPoint, b.pos)
		torque := vmath.V3FCross(arm, impulse)
		b.angVel = vmath.V3FAddScaled(b.angVel, torque, b.invInertia)
	}
	return true
}

// Step advances the world by realDt
// Whole fixed steps are taken from the accumulator up to maxSubsteps; time beyond the cap is dropped
// keeping only the remainder modulo fixedDt
func (s *Space) Step(fixedDt, realDt float64, maxSubsteps int) error {
	if !(fixedDt > 0) || math.IsInf(fixedDt, 0) {
		return fmt.Errorf("fixed step %v: %w", fixedDt, ErrInvalidStep)
	}
	if !(realDt >= 0) || math.IsInf(realDt, 0) {
		return fmt.Errorf("frame delta %v: %w", realDt, ErrInvalidStep)
	}
	if maxSubsteps < 1 {
		maxSubsteps = 1
	}

	s.accumulator += realDt
	n := int(s.accumulator / fixedDt)
	if n > maxSubsteps {
		n = maxSubsteps
		s.accumulator = math.Mod(s.accumulator, fixedDt)
	} else {
		s.accumulator -= float64(n) * fixedDt
	}

	for i := 0; i < n; i++ {
		s.substep(fixedDt)
	}
	return nil
}

func (s *Space) substep(dt float64) {
	linKeep := math.Pow(1-s.cfg.LinearDamping, dt)
	angKeep := math.Pow(1-s.cfg.AngularDamping, dt)

	for _, b := range s.order {
		if b.invMass == 0 {
			continue
		}
		b.vel = vmath.V3FAddScaled(b.vel, s.cfg.Gravity, dt)
		b.vel = vmath.V3FScale(b.vel, linKeep)
		b.angVel = vmath.V3FScale(b.angVel, angKeep)
		b.pos = vmath.V3FAddScaled(b.pos, b.vel, dt)
		b.orient = vmath.IntegrateQuat(b.orient, b.angVel, dt)
	}

	s.resolvePairs()

	if s.cfg.Ground {
		for _, b := range s.order {
			if b.invMass == 0 {
				continue
			}
			if ReflectFloor(&b.pos.Y, &b.vel.Y, b.groundExtent(), s.cfg.GroundRestitution) {
				s.contacts++
			}
		}
	}

	s.substeps++
}

func (s *Space) resolvePairs() {
	for i := 0; i < len(s.order); i++ {
		a := s.order[i]
		for j := i + 1; j < len(s.order); j++ {
			b := s.order[j]
			if a.invMass == 0 && b.invMass == 0 {
				continue
			}
			if !SeparateOverlap3DF(&a.pos, &b.pos, a.radius, b.radius, a.invMass, b.invMass, s.cfg.ContactMargin) {
				continue
			}
			ElasticCollision3DF(&a.pos, &b.pos, &a.vel, &b.vel, a.invMass, b.invMass, s.cfg.BodyRestitution)
			s.contacts++
		}
	}
}

// groundExtent returns the lowest point of the body below its centre
func (b *body) groundExtent() float64 {
	if b.shape.Kind == ShapeSphere {
		return b.shape.Radius
	}
	h := b.shape.HalfExtent
	ax := vmath.Rotate(b.orient, vmath.Vec3F{X: h.X})
	ay := vmath.Rotate(b.orient, vmath.Vec3F{Y: h.Y})
	az := vmath.Rotate(b.orient, vmath.Vec3F{Z: h.Z})
	return math.Abs(ax.Y) + math.Abs(ay.Y) + math.Abs(az.Y)
}

func (s *Space) State(id BodyID) (BodyState, bool) {
	b, ok := s.bodies[id]
	if !ok {
		return BodyState{}, false
	}
	return BodyState{Position: b.pos, Orientation: b.orient, Velocity: b.vel}, true
}

func (s *Space) BodyCount() int {
	return len(s.bodies)
}

// Substeps returns the total fixed steps taken
func (s *Space) Substeps() uint64 {
	return s.substeps
}

// Contacts returns the total resolved contacts, ground included
func (s *Space) Contacts() uint64 {
	return s.contacts
}

var _ World = (*Space)(nil)
