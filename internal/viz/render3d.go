package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

const (
	minElevation = -90.0
	maxElevation = 90.0
)

// Camera is an orthographic view of a z-up scene. Angles are in degrees.
type Camera struct {
	Elevation, Azimuth float64
	Zoom               float64

	home [3]float64
}

func NewCamera(elev, azim, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{Elevation: elev, Azimuth: azim, Zoom: zoom, home: [3]float64{elev, azim, zoom}}
}

// Rotate adjusts the view. Elevation is clamped to [-90, 90]; azimuth wraps to (-180, 180].
func (c *Camera) Rotate(dElev, dAzim float64) {
	c.Elevation = math.Max(minElevation, math.Min(maxElevation, c.Elevation+dElev))
	a := math.Mod(c.Azimuth+dAzim, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	c.Azimuth = a
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) Reset() {
	c.Elevation, c.Azimuth, c.Zoom = c.home[0], c.home[1], c.home[2]
}

// Project returns screen coordinates (u right, v up) and depth; larger depth is
// closer to the viewer.
func (c *Camera) Project(p Vec3) (u, v, depth float64) {
	e := c.Elevation * math.Pi / 180
	a := c.Azimuth * math.Pi / 180
	se, ce := math.Sincos(e)
	sa, ca := math.Sincos(a)

	eye := Vec3{ce * ca, ce * sa, se}
	right := Vec3{-sa, ca, 0}
	up := Vec3{-se * ca, -se * sa, ce}

	return p.Dot(right) * c.Zoom, p.Dot(up) * c.Zoom, p.Dot(eye)
}

// viewExtent is the half-width of the normalised box seen from any angle.
var viewExtent = math.Sqrt(2 + zAspect*zAspect)

// ToScreen maps p onto a sw x sh pixel grid with y pointing down.
func (c *Camera) ToScreen(p Vec3, sw, sh int) (int, int, float64, bool) {
	u, v, d := c.Project(p)
	minDim := math.Min(float64(sw), float64(sh))
	scale := minDim / (2 * viewExtent)
	sx := int(math.Round(u*scale)) + sw/2
	sy := int(math.Round(-v*scale)) + sh/2
	return sx, sy, d, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

func (w *Wireframe) AddPolyline(pts []Vec3) {
	for k := 1; k < len(pts); k++ {
		w.AddEdge(pts[k-1], pts[k])
	}
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws the wireframe back to front onto the canvas sub-pixel grid.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.PixelWidth(), c.PixelHeight()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.ToScreen(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.ToScreen(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// BoxWireframe returns the edges of the normalised bounding box.
func BoxWireframe() *Wireframe {
	w, z := NewWireframe(), zAspect
	v := []Vec3{{-1, -1, -z}, {1, -1, -z}, {1, 1, -z}, {-1, 1, -z}, {-1, -1, z}, {1, -1, z}, {1, 1, z}, {-1, 1, z}}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for _, e := range ei {
		w.AddEdge(v[e[0]], v[e[1]])
	}
	return w
}
