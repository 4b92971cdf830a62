// Package render draws simulation state: a shared camera projection and the tcell terminal renderer
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/vmath"
)

// Projector maps world points to screen coordinates for a camera looking at the origin
// CellAspect is the height/width ratio of one screen unit: 2 for terminal cells, 1 for pixels
type Projector struct {
	Width      float64
	Height     float64
	CellAspect float64

	eye   mgl64.Vec3
	vp    mgl64.Mat4
	focal float64
}

func NewProjector(width, height int, cellAspect float64) *Projector {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	p := &Projector{CellAspect: cellAspect}
	p.Resize(width, height)
	p.LookFrom(vmath.Vec3F{X: parameter.CameraX, Y: parameter.CameraY, Z: parameter.CameraZ})
	return p
}

// Resize updates the viewport; the camera is kept
func (p *Projector) Resize(width, height int) {
	p.Width = float64(max(width, 1))
	p.Height = float64(max(height, 1))
	fov := mgl64.DegToRad(parameter.CameraFOV)
	p.focal = p.Height / 2 / math.Tan(fov/2)
	p.rebuild()
}

// LookFrom places the camera at eye, looking at the origin with +Y up
func (p *Projector) LookFrom(eye vmath.Vec3F) {
	p.eye = vmath.ToMgl(eye)
	p.rebuild()
}

func (p *Projector) rebuild() {
	aspect := p.Width / (p.Height * p.CellAspect)
	proj := mgl64.Perspective(mgl64.DegToRad(parameter.CameraFOV), aspect, parameter.CameraNear, parameter.CameraFar)
	view := mgl64.LookAtV(p.eye, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	p.vp = proj.Mul4(view)
}

// Project returns screen x,y (origin top-left) and view depth
// ok is false for points at or behind the near plane
func (p *Projector) Project(v vmath.Vec3F) (x, y, depth float64, ok bool) {
	clip := p.vp.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	w := clip[3]
	if w <= parameter.CameraNear {
		return 0, 0, w, false
	}
	ndcX := clip[0] / w
	ndcY := clip[1] / w
	x = (ndcX + 1) / 2 * p.Width
	y = (1 - ndcY) / 2 * p.Height
	return x, y, w, true
}

// Radius scales a world radius at depth to screen units on each axis
func (p *Projector) Radius(r, depth float64) (rx, ry float64) {
	if depth <= parameter.CameraNear {
		return 0, 0
	}
	ry = r * p.focal / depth
	return ry * p.CellAspect, ry
}
