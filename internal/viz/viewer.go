package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

const rotateStep = 5.0

// Viewer is the bubbletea model behind the tui backend.
type Viewer struct {
	axes          *Axes
	cam           *Camera
	theme         Theme
	width, height int
	quitting      bool
}

func NewViewer(fig *Figure, theme Theme) Viewer {
	ax := fig.Axes()
	return Viewer{
		axes:   ax,
		cam:    ax.Camera(),
		theme:  theme,
		width:  int(fig.Width * cellsPerInchX),
		height: int(fig.Height * cellsPerInchY),
	}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			v.quitting = true
			return v, tea.Quit
		case "left", "h":
			v.cam.Rotate(0, -rotateStep)
		case "right", "l":
			v.cam.Rotate(0, rotateStep)
		case "up", "k":
			v.cam.Rotate(rotateStep, 0)
		case "down", "j":
			v.cam.Rotate(-rotateStep, 0)
		case "+", "=":
			v.cam.ZoomIn()
		case "-", "_":
			v.cam.ZoomOut()
		case "r":
			v.cam.Reset()
		case "t":
			v.theme = v.theme.next()
		}
	case tea.WindowSizeMsg:
		// leave room for the title, labels and hint lines
		v.width, v.height = msg.Width, msg.Height-4
		if v.height < 1 {
			v.height = 1
		}
	}
	return v, nil
}

func (v Viewer) View() string {
	if v.quitting {
		return ""
	}
	hint := fmt.Sprintf("elev %.0f°  azim %.0f°  zoom %.2f  [%s]   ←↑↓→ rotate  +/- zoom  t theme  r reset  q quit",
		v.cam.Elevation, v.cam.Azimuth, v.cam.Zoom, v.theme.Name)
	return renderFrame(v.axes, v.cam, v.theme, v.width, v.height) + v.theme.hint().Render(hint)
}

func (v Viewer) Camera() Camera { return *v.cam }
func (v Viewer) Theme() Theme  { return v.theme }
