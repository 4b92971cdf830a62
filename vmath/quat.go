package vmath

import "github.com/go-gl/mathgl/mgl64"

// Orientation and rotation helpers on top of mgl64
// Simulation code stays on Vec3F; conversion happens at the quaternion boundary

func ToMgl(v Vec3F) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func FromMgl(v mgl64.Vec3) Vec3F {
	return Vec3F{v[0], v[1], v[2]}
}

// QuatIdent is the unrotated orientation
func QuatIdent() mgl64.Quat {
	return mgl64.QuatIdent()
}

// RotateAboutY rotates v around the world Y axis by angle radians
func RotateAboutY(v Vec3F, angle float64) Vec3F {
	q := mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})
	return FromMgl(q.Rotate(ToMgl(v)))
}

// Rotate applies orientation q to v
func Rotate(q mgl64.Quat, v Vec3F) Vec3F {
	return FromMgl(q.Rotate(ToMgl(v)))
}

// IntegrateQuat advances orientation q by angular velocity w (rad/s) over dt
// q' = normalize(q + 0.5 * (0,w) * q * dt)
func IntegrateQuat(q mgl64.Quat, w Vec3F, dt float64) mgl64.Quat {
	if V3FMagSq(w) == 0 || dt == 0 {
		return q
	}
	spin := mgl64.Quat{W: 0, V: ToMgl(w)}.Mul(q).Scale(0.5 * dt)
	return q.Add(spin).Normalize()
}

// DirectionFromAngles returns the unit vector for yaw (around Y, 0 = -Z) and pitch (up positive)
func DirectionFromAngles(yaw, pitch float64) Vec3F {
	q := mgl64.AnglesToQuat(yaw, pitch, 0, mgl64.YXZ)
	return V3FNormalizeOr(FromMgl(q.Rotate(mgl64.Vec3{0, 0, -1})), V3FFwd)
}
