package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the terminal frame around the mesh. The mesh itself keeps
// its own stroke color.
type Theme struct {
	Name  string
	Title lipgloss.Color
	Label lipgloss.Color
	Box   lipgloss.Color
	Hint  lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:  "dark",
		Title: lipgloss.Color("255"),
		Label: lipgloss.Color("242"),
		Box:   lipgloss.Color("238"),
		Hint:  lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Title: lipgloss.Color("#00ff00"), // Green phosphor
		Label: lipgloss.Color("#00cc00"),
		Box:   lipgloss.Color("#005500"),
		Hint:  lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:  "minimal",
		Title: lipgloss.Color("#ffffff"),
		Label: lipgloss.Color("#cccccc"),
		Box:   lipgloss.Color("#444444"),
		Hint:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Title: lipgloss.Color("#e0f0ff"),
		Label: lipgloss.Color("#00a8cc"),
		Box:   lipgloss.Color("#0077be"),
		Hint:  lipgloss.Color("#4488aa"),
	}

	Themes = []Theme{ThemeDark, ThemeRetroGreen, ThemeMinimal, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to ThemeDark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) title() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(t.Title) }
func (t Theme) label() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Label) }
func (t Theme) box() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.Box) }
func (t Theme) hint() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Hint).Italic(true) }

// next returns the theme after t in Themes, wrapping around.
func (t Theme) next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
