package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cells per inch of figure size; terminal cells are roughly twice as tall as wide
const (
	cellsPerInchX = 8
	cellsPerInchY = 4
)

// TermBackend prints the figure as braille art.
type TermBackend struct {
	Out   io.Writer
	Theme Theme
}

func (b *TermBackend) Name() string { return "term" }

func (b *TermBackend) Render(fig *Figure) error {
	w := int(fig.Width * cellsPerInchX)
	h := int(fig.Height * cellsPerInchY)
	_, err := io.WriteString(b.Out, renderFrame(fig.Axes(), fig.Axes().Camera(), b.Theme, w, h))
	return err
}

// renderFrame draws the axes at the given camera into a w x h cell block with
// the title above and the axis labels below.
func renderFrame(ax *Axes, cam *Camera, th Theme, w, h int) string {
	box := NewCanvas(w, h)
	Render3D(box, BoxWireframe(), cam)
	mesh := NewCanvas(w, h)
	Render3D(mesh, ax.Wireframe(), cam)

	meshStyle := lipgloss.NewStyle()
	if ms := ax.Meshes(); len(ms) > 0 {
		meshStyle = meshStyle.Foreground(lipgloss.Color(hexColor(ms[0].Color)))
	}

	var sb strings.Builder
	if ax.Title != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, th.title().Render(ax.Title)))
		sb.WriteString("\n")
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r := mesh.Grid[row][col]
			switch {
			case r != brailleBlank:
				sb.WriteString(meshStyle.Render(string(r)))
			case box.Grid[row][col] != brailleBlank:
				sb.WriteString(th.box().Render(string(box.Grid[row][col])))
			default:
				sb.WriteRune(r)
			}
		}
		sb.WriteString("\n")
	}

	var labels []string
	for _, l := range []struct{ axis, text string }{{"x", ax.XLabel}, {"y", ax.YLabel}, {"z", ax.ZLabel}} {
		if l.text != "" {
			labels = append(labels, fmt.Sprintf("%s: %s", l.axis, l.text))
		}
	}
	if len(labels) > 0 {
		sb.WriteString(th.label().Render(strings.Join(labels, "   ")))
		sb.WriteString("\n")
	}
	return sb.String()
}
