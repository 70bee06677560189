package viz

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/meshplot/internal/grid"
)

type failingBackend struct{ panics bool }

func (failingBackend) Name() string { return "failing" }

func (b failingBackend) Render(*Figure) error {
	if b.panics {
		panic("display unavailable")
	}
	return errors.New("no display")
}

func meshFigure() (*Figure, *Axes) {
	g, f, err := grid.Generate(grid.DefaultSpec())
	Expect(err).NotTo(HaveOccurred())

	fig, err := NewFigure(10, 7)
	Expect(err).NotTo(HaveOccurred())
	ax, err := fig.AddAxes3D()
	Expect(err).NotTo(HaveOccurred())

	_, err = ax.PlotWireframe(g, f, WithColor(namedColors["green"]))
	Expect(err).NotTo(HaveOccurred())
	ax.SetTitle("3D Mesh Plot")
	ax.SetXLabel("X axis")
	ax.SetYLabel("Y axis")
	ax.SetZLabel("Z axis")
	return fig, ax
}

var _ = Describe("Figure", func() {
	It("rejects invalid sizes", func() {
		for _, wh := range [][2]float64{{0, 7}, {10, -1}, {10, 0}} {
			_, err := NewFigure(wh[0], wh[1])
			Expect(err).To(MatchError(ErrInvalidSize))
		}
	})

	It("owns exactly one axes", func() {
		fig, err := NewFigure(10, 7)
		Expect(err).NotTo(HaveOccurred())
		ax, err := fig.AddAxes3D()
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Axes()).To(BeIdenticalTo(ax))
		Expect(ax.Elevation).To(Equal(30.0))
		Expect(ax.Azimuth).To(Equal(-60.0))

		_, err = fig.AddAxes3D()
		Expect(err).To(MatchError(ErrAxesExists))
	})

	It("stores every annotation including the z label", func() {
		_, ax := meshFigure()
		Expect(ax.Title).To(Equal("3D Mesh Plot"))
		Expect(ax.XLabel).To(Equal("X axis"))
		Expect(ax.YLabel).To(Equal("Y axis"))
		Expect(ax.ZLabel).To(Equal("Z axis"))
	})

	It("refuses new axes after close", func() {
		fig, _ := NewFigure(1, 1)
		Expect(fig.Close()).To(Succeed())
		Expect(fig.Close()).To(Succeed())
		_, err := fig.AddAxes3D()
		Expect(err).To(MatchError(ErrFigureClosed))
	})
})

var _ = Describe("PlotWireframe", func() {
	It("connects the grid along both axes", func() {
		_, ax := meshFigure()
		Expect(ax.Meshes()).To(HaveLen(1))
		m := ax.Meshes()[0]
		Expect(m.Points).To(HaveLen(50))
		Expect(m.Points[0]).To(HaveLen(50))
		Expect(m.Color).To(Equal(namedColors["green"]))

		lines := m.Polylines()
		Expect(lines).To(HaveLen(100))
		Expect(lines[0]).To(HaveLen(50))
		Expect(lines[50]).To(HaveLen(50))
		Expect(ax.Wireframe().Edges).To(HaveLen(100 * 49))
	})

	It("maps grid positions to (x, y, z)", func() {
		g, f, _ := grid.Generate(grid.DefaultSpec())
		_, ax := meshFigure()
		p := ax.Meshes()[0].Points[3][7]
		Expect(p.X).To(Equal(g.XSeq().At(7)))
		Expect(p.Y).To(Equal(g.YSeq().At(3)))
		Expect(p.Z).To(Equal(f.At(3, 7)))
	})

	It("thins lines with strides and keeps the last row and column", func() {
		g, f, _ := grid.Generate(grid.DefaultSpec())
		fig, _ := NewFigure(10, 7)
		ax, _ := fig.AddAxes3D()
		m, err := ax.PlotWireframe(g, f, WithStride(10, 7))
		Expect(err).NotTo(HaveOccurred())
		Expect(strideIndices(50, 10)).To(Equal([]int{0, 10, 20, 30, 40, 49}))
		Expect(strideIndices(50, 7)).To(Equal([]int{0, 7, 14, 21, 28, 35, 42, 49}))
		Expect(m.Polylines()).To(HaveLen(6 + 8))
	})

	It("rejects a field whose shape differs from the grid", func() {
		g, _, _ := grid.Generate(grid.DefaultSpec())
		small := grid.DefaultSpec()
		small.XCount = 20
		_, f, _ := grid.Generate(small)

		fig, _ := NewFigure(10, 7)
		ax, _ := fig.AddAxes3D()
		_, err := ax.PlotWireframe(g, f)
		Expect(err).To(MatchError(ErrShapeMismatch))
		Expect(ax.Meshes()).To(BeEmpty())
	})

	It("normalises geometry into the view box", func() {
		_, ax := meshFigure()
		lines, owners := ax.NormalizedPolylines()
		Expect(owners).To(HaveLen(len(lines)))
		for _, pl := range lines {
			for _, p := range pl {
				Expect(p.X).To(And(BeNumerically(">=", -1), BeNumerically("<=", 1)))
				Expect(p.Y).To(And(BeNumerically(">=", -1), BeNumerically("<=", 1)))
				Expect(p.Z).To(And(BeNumerically(">=", -zAspect), BeNumerically("<=", zAspect)))
			}
		}
	})
})

var _ = Describe("Show", func() {
	It("renders headless and closes the figure", func() {
		fig, _ := meshFigure()
		Expect(Show(fig, NullBackend{})).To(Succeed())
		Expect(fig.Closed()).To(BeTrue())
		Expect(fig.Axes().Meshes()).To(BeEmpty())
	})

	It("propagates backend failures and still closes", func() {
		fig, _ := meshFigure()
		err := Show(fig, failingBackend{})
		Expect(err).To(MatchError(ContainSubstring("no display")))
		Expect(fig.Closed()).To(BeTrue())
	})

	It("recovers a panicking backend and still closes", func() {
		fig, _ := meshFigure()
		err := Show(fig, failingBackend{panics: true})
		Expect(err).To(MatchError(ContainSubstring("display unavailable")))
		Expect(fig.Closed()).To(BeTrue())
	})

	It("rejects a closed figure", func() {
		fig, _ := meshFigure()
		Expect(fig.Close()).To(Succeed())
		Expect(Show(fig, NullBackend{})).To(MatchError(ErrFigureClosed))
	})

	It("requires axes", func() {
		fig, _ := NewFigure(10, 7)
		Expect(Show(fig, NullBackend{})).To(MatchError(ErrNoAxes))
		Expect(fig.Closed()).To(BeTrue())
	})
})

var _ = Describe("Backends", func() {
	var reg *Registry

	BeforeEach(func() {
		reg = NewRegistry()
	})

	It("falls back to the dark theme", func() {
		Expect(GetTheme("nope")).To(Equal(ThemeDark))
		Expect(ThemeNames()).To(HaveLen(len(Themes)))
		Expect(ThemeOcean.next()).To(Equal(ThemeDark))
	})

	It("lists the registered backends", func() {
		Expect(reg.List()).To(ContainElements("png", "svg", "term", "tui", "none"))
		_, err := reg.Get("x11", Options{})
		Expect(err).To(MatchError(ErrUnknownBackend))
	})

	It("encodes png to a writer", func() {
		var buf bytes.Buffer
		b, err := reg.Get("png", Options{Out: &buf})
		Expect(err).NotTo(HaveOccurred())
		fig, _ := meshFigure()
		Expect(Show(fig, b)).To(Succeed())
		Expect(bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG"))).To(BeTrue())
	})

	It("writes svg to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "mesh.svg")
		b, _ := reg.Get("svg", Options{Path: path})
		fig, _ := meshFigure()
		Expect(Show(fig, b)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("<svg"))
	})

	It("fails when the output path cannot be created", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing", "mesh.png")
		b, _ := reg.Get("png", Options{Path: path})
		fig, _ := meshFigure()
		Expect(Show(fig, b)).NotTo(Succeed())
		Expect(fig.Closed()).To(BeTrue())
	})

	It("prints braille art with title and labels", func() {
		var buf bytes.Buffer
		b, _ := reg.Get("term", Options{Out: &buf})
		fig, _ := meshFigure()
		Expect(Show(fig, b)).To(Succeed())

		out := buf.String()
		Expect(out).To(ContainSubstring("3D Mesh Plot"))
		Expect(out).To(ContainSubstring("z: Z axis"))
		Expect(strings.ContainsFunc(out, func(r rune) bool { return r > brailleBlank && r <= 0x28ff })).To(BeTrue())
	})
})

var _ = Describe("ParseColor", func() {
	It("accepts names and hex", func() {
		c, err := ParseColor("Green")
		Expect(err).NotTo(HaveOccurred())
		Expect(hexColor(c)).To(Equal("#008000"))

		c, err = ParseColor("#1a2B3c")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.R).To(Equal(uint8(0x1a)))
		Expect(c.B).To(Equal(uint8(0x3c)))
		Expect(c.A).To(Equal(uint8(0xff)))

		_, err = ParseColor("#12")
		Expect(err).To(MatchError(ErrUnknownColor))
	})
})

var _ = Describe("Viewer", func() {
	It("rotates, zooms and resets from key presses", func() {
		fig, _ := meshFigure()
		var m tea.Model = NewViewer(fig, ThemeDark)

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		Expect(m.(Viewer).Camera().Azimuth).To(BeNumerically("~", -55, 1e-9))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
		Expect(m.(Viewer).Camera().Elevation).To(BeNumerically("~", 35, 1e-9))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
		Expect(m.(Viewer).Camera().Zoom).To(BeNumerically(">", 1))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		Expect(m.(Viewer).Camera().Azimuth).To(Equal(-60.0))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
		Expect(m.(Viewer).Theme().Name).To(Equal("retro"))

		Expect(m.View()).To(ContainSubstring("3D Mesh Plot"))
	})

	It("resizes to the window", func() {
		fig, _ := meshFigure()
		m, _ := NewViewer(fig, ThemeDark).Update(tea.WindowSizeMsg{Width: 40, Height: 20})
		lines := strings.Split(m.View(), "\n")
		Expect(len(lines)).To(BeNumerically("<=", 20))
	})

	It("quits on q", func() {
		fig, _ := meshFigure()
		m, cmd := NewViewer(fig, ThemeDark).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.Quit()))
		Expect(m.View()).To(BeEmpty())
	})
})
