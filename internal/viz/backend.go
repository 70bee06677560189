package viz

import (
	"fmt"
	"io"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Backend presents a figure. Render may block (tui) until the user is done.
type Backend interface {
	Name() string
	Render(fig *Figure) error
}

// Options configure backend construction. Zero values pick defaults.
type Options struct {
	// Path is the output file for file backends; empty writes to Out.
	Path  string
	Out   io.Writer
	In    io.Reader
	Theme string
}

func (o Options) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// Show presents fig with b and closes the figure on every exit path,
// including a panicking backend.
func Show(fig *Figure, b Backend) (err error) {
	if fig.Closed() {
		return ErrFigureClosed
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("viz: backend %s panicked: %v", b.Name(), r)
		}
		fig.Close()
	}()
	if fig.Axes() == nil {
		return ErrNoAxes
	}
	log.WithField("backend", b.Name()).Debug("showing figure")
	if err := b.Render(fig); err != nil {
		return fmt.Errorf("viz: %s backend: %w", b.Name(), err)
	}
	return nil
}

type Registry struct {
	backends map[string]func(Options) Backend
}

func NewRegistry() *Registry {
	r := &Registry{backends: make(map[string]func(Options) Backend)}

	for _, format := range []string{"png", "svg", "pdf", "eps", "jpg", "tiff"} {
		format := format // per-iteration copy; go directive is below 1.22
		r.backends[format] = func(o Options) Backend { return &FileBackend{Format: format, Path: o.Path, Out: o.out()} }
	}
	r.backends["term"] = func(o Options) Backend { return &TermBackend{Out: o.out(), Theme: GetTheme(o.Theme)} }
	r.backends["tui"] = func(o Options) Backend { return &TUIBackend{In: o.In, Out: o.out(), Theme: GetTheme(o.Theme)} }
	r.backends["none"] = func(o Options) Backend { return NullBackend{} }

	return r
}

func (r *Registry) Get(name string, opts Options) (Backend, error) {
	fn, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownBackend, name, r.List())
	}
	return fn(opts), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileBackend encodes the figure with gonum plot in Format and writes it to
// Path, or to Out when Path is empty.
type FileBackend struct {
	Format string
	Path   string
	Out    io.Writer
}

func (b *FileBackend) Name() string { return b.Format }

func (b *FileBackend) Render(fig *Figure) error {
	w, h := figureSize(fig)
	wt, err := newPlot(fig).WriterTo(w, h, b.Format)
	if err != nil {
		return err
	}
	if b.Path == "" {
		_, err = wt.WriteTo(b.Out)
		return err
	}

	f, err := os.Create(b.Path)
	if err != nil {
		return err
	}
	n, err := wt.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": b.Path, "bytes": n}).Info("wrote figure")
	return nil
}

// NullBackend draws into an in-memory image and discards it.
type NullBackend struct{}

func (NullBackend) Name() string { return "none" }

func (NullBackend) Render(fig *Figure) error {
	w, h := figureSize(fig)
	c := vgimg.New(w, h)
	newPlot(fig).Draw(draw.New(c))
	return nil
}

// TUIBackend runs the interactive viewer and blocks until the user quits.
type TUIBackend struct {
	In    io.Reader
	Out   io.Writer
	Theme Theme
}

func (b *TUIBackend) Name() string { return "tui" }

func (b *TUIBackend) Render(fig *Figure) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(b.Out)}
	if b.In != nil {
		opts = append(opts, tea.WithInput(b.In))
	}
	_, err := tea.NewProgram(NewViewer(fig, b.Theme), opts...).Run()
	return err
}
