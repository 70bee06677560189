package viz

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var paneColor = color.Gray{Y: 0xb0}

// meshPlotter draws an Axes' wireframe onto a gonum plot data canvas.
type meshPlotter struct {
	axes *Axes
}

func (mp meshPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	cam := mp.axes.Camera()
	ctr := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	half := math.Min(float64(c.Max.X-c.Min.X), float64(c.Max.Y-c.Min.Y)) / 2
	scale := half / viewExtent

	pt := func(p Vec3) vg.Point {
		u, v, _ := cam.Project(p)
		return vg.Point{X: ctr.X + vg.Length(u*scale), Y: ctr.Y + vg.Length(v*scale)}
	}

	box := draw.LineStyle{Color: paneColor, Width: vg.Points(0.5)}
	for _, e := range BoxWireframe().Edges {
		c.StrokeLines(box, []vg.Point{pt(e.Start), pt(e.End)})
	}

	lines, owners := mp.axes.NormalizedPolylines()
	for k, pl := range lines {
		m := owners[k]
		sty := draw.LineStyle{Color: m.Color, Width: vg.Points(m.LineWidth)}
		pts := make([]vg.Point, len(pl))
		for i, p := range pl {
			pts[i] = pt(p)
		}
		c.StrokeLines(sty, pts)
	}

	if mp.axes.ZLabel == "" {
		return
	}
	// place the z label beside the vertical box edge furthest left on screen
	anchor, best := Vec3{}, math.Inf(1)
	for _, xy := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		p := Vec3{xy[0], xy[1], 0}
		if u, _, _ := cam.Project(p); u < best {
			anchor, best = p, u
		}
	}
	sty := plt.Y.Label.TextStyle
	sty.Rotation = math.Pi / 2
	sty.XAlign = text.XCenter
	sty.YAlign = text.YBottom
	at := pt(anchor)
	at.X -= sty.Font.Size
	c.FillText(sty, at, mp.axes.ZLabel)
}

// newPlot builds a gonum plot for the figure: title and x/y labels from the
// axes, 2D ticks hidden, mesh drawn by meshPlotter.
func newPlot(fig *Figure) *plot.Plot {
	ax := fig.Axes()
	p := plot.New()
	p.Title.Text = ax.Title
	p.X.Label.Text = ax.XLabel
	p.Y.Label.Text = ax.YLabel
	p.HideAxes()
	p.Add(meshPlotter{axes: ax})
	return p
}

func figureSize(fig *Figure) (vg.Length, vg.Length) {
	return vg.Length(fig.Width) * vg.Inch, vg.Length(fig.Height) * vg.Inch
}
