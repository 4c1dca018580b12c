package viz

import (
	"math"

	"github.com/san-kum/bps/internal/vecmath"
)

// Camera maps world positions onto a canvas. Orientation is accumulated from
// axis/angle turns; the view looks down -z of the rotated frame.
type Camera struct {
	Orientation vecmath.Quaternion
	// Distance from the eye to the origin. Zero gives an orthographic view.
	Distance float64
	Zoom     float64
	// Extent is the world half-width that fills the shorter canvas side.
	Extent float64
}

func NewCamera() *Camera {
	return &Camera{
		Orientation: vecmath.NewQuaternion(1, 0, 0, 0),
		Zoom:        1,
		Extent:      1,
	}
}

// Turn rotates the view by angle radians about axis, applied after any
// earlier turns.
func (c *Camera) Turn(axis vecmath.ThreeVector, angle float64) {
	c.Orientation = vecmath.Mul(vecmath.RotationQuaternion(axis, angle), c.Orientation)
}

// View returns p in camera coordinates.
func (c *Camera) View(p vecmath.ThreeVector) vecmath.ThreeVector {
	return c.Orientation.RotateVector(p)
}

// Fit sets Extent so that every point lands inside the frame with a margin.
func (c *Camera) Fit(points []vecmath.ThreeVector) {
	extent := 0.0
	for _, p := range points {
		v := c.View(p)
		extent = math.Max(extent, math.Max(math.Abs(v.X()), math.Abs(v.Y())))
	}
	if extent == 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		extent = 1
	}
	c.Extent = extent * 1.1
}

// Project converts p to pixel coordinates on a w x h raster. depth grows
// toward the viewer; ok is false when p is behind the eye or off-raster.
func (c *Camera) Project(p vecmath.ThreeVector, w, h int) (x, y int, depth float64, ok bool) {
	v := c.View(p).Scale(c.Zoom)
	if math.IsNaN(v.X()) || math.IsNaN(v.Y()) {
		return 0, 0, 0, false
	}
	s := 1.0
	if c.Distance > 0 {
		if v.Z() >= c.Distance {
			return 0, 0, 0, false
		}
		s = c.Distance / (c.Distance - v.Z())
	}
	half := float64(min(w, h)-1) / 2
	x = w/2 + int(math.Round(v.X()*s/c.Extent*half))
	y = h/2 - int(math.Round(v.Y()*s/c.Extent*half))
	return x, y, v.Z(), x >= 0 && x < w && y >= 0 && y < h
}

// DrawTrajectories renders particle paths. frames is indexed by sample then
// particle; the last frame is marked.
func DrawTrajectories(cv *Canvas, cam *Camera, frames [][]vecmath.ThreeVector) {
	if cv == nil || cam == nil || len(frames) == 0 {
		return
	}
	w, h := cv.PixelSize()
	for k := 1; k < len(frames); k++ {
		prev, cur := frames[k-1], frames[k]
		for i := range min(len(prev), len(cur)) {
			x0, y0, _, ok0 := cam.Project(prev[i], w, h)
			x1, y1, _, ok1 := cam.Project(cur[i], w, h)
			if ok0 && ok1 {
				cv.DrawLine(x0, y0, x1, y1)
			}
		}
	}
	for _, p := range frames[len(frames)-1] {
		if x, y, _, ok := cam.Project(p, w, h); ok {
			cv.Mark(x, y)
		}
	}
}

// Snapshot fits cam to the recorded positions and returns the rendered
// canvas of width x height cells.
func Snapshot(frames [][]vecmath.ThreeVector, cam *Camera, width, height int) string {
	if cam == nil {
		cam = NewCamera()
	}
	var all []vecmath.ThreeVector
	for _, f := range frames {
		all = append(all, f...)
	}
	cam.Fit(all)
	cv := NewCanvas(width, height)
	DrawTrajectories(cv, cam, frames)
	return cv.String()
}
