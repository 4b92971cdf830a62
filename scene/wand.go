package scene

import (
	"math"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/vmath"
)

// Wand is the caster; spells leave from Tip along Direction
type Wand struct {
	Yaw   float64
	Pitch float64

	swingLeft float64
}

func NewWand() Wand {
	return Wand{}
}

// Tip is the world position spells originate from
func (w *Wand) Tip() vmath.Vec3F {
	return vmath.Vec3F{X: parameter.WandTipX, Y: parameter.WandTipY, Z: parameter.WandTipZ}
}

// Direction is the unit aim vector
func (w *Wand) Direction() vmath.Vec3F {
	return vmath.DirectionFromAngles(w.Yaw, w.Pitch)
}

// Aim turns the wand; pitch is bounded, yaw wraps
func (w *Wand) Aim(dYaw, dPitch float64) {
	w.Yaw = vmath.WrapAngle(w.Yaw + dYaw)
	w.Pitch = vmath.Clamp(w.Pitch+dPitch, -parameter.WandMaxPitch, parameter.WandMaxPitch)
}

// Swing starts the cast animation, restarting it if already running
func (w *Wand) Swing() {
	w.swingLeft = parameter.WandSwingDuration
}

func (w *Wand) Swinging() bool {
	return w.swingLeft > 0
}

// SwingAngle is the current cosmetic tilt in radians, peaking mid-swing
func (w *Wand) SwingAngle() float64 {
	if w.swingLeft <= 0 {
		return 0
	}
	progress := 1 - w.swingLeft/parameter.WandSwingDuration
	return math.Sin(progress*math.Pi) * parameter.WandSwingAngle
}

func (w *Wand) Advance(dt float64) {
	if w.swingLeft > 0 {
		w.swingLeft = math.Max(0, w.swingLeft-dt)
	}
}
