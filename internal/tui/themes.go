package tui

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/pders01/reel/internal/config"
)

//go:embed themes.toml
var themesTOML []byte

// CustomTheme takes its palette from ui.colors.
const CustomTheme = "custom"

// Theme is a named palette plus the glamour style used for details.
type Theme struct {
	Name        string `toml:"-"`
	Description string `toml:"description"`
	Primary     string `toml:"primary"`
	Secondary   string `toml:"secondary"`
	Accent      string `toml:"accent"`
	Background  string `toml:"background"`
	Surface     string `toml:"surface"`
	Text        string `toml:"text"`
	Muted       string `toml:"muted"`
	Highlight   string `toml:"highlight"`
	Error       string `toml:"error"`
	Success     string `toml:"success"`
	Glamour     string `toml:"glamour"`
}

type themesFile struct {
	Themes map[string]Theme `toml:"themes"`
}

// ThemeRegistry holds the built-in palettes.
type ThemeRegistry struct {
	themes map[string]Theme
}

func NewThemeRegistry() (*ThemeRegistry, error) {
	var f themesFile
	if err := toml.Unmarshal(themesTOML, &f); err != nil {
		return nil, fmt.Errorf("parsing themes.toml: %w", err)
	}
	for name, t := range f.Themes {
		t.Name = name
		f.Themes[name] = t
	}
	return &ThemeRegistry{themes: f.Themes}, nil
}

// Names lists the built-in themes alphabetically.
func (r *ThemeRegistry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for n := range r.themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *ThemeRegistry) Get(name string) (Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Resolve picks the theme for cfg. Unknown names fall back to dusk.
func (r *ThemeRegistry) Resolve(cfg *config.Config) Theme {
	if cfg.UI.Theme == CustomTheme {
		c := cfg.UI.Colors
		base, _ := r.Get("dusk")
		return Theme{
			Name:       CustomTheme,
			Primary:    c.Primary,
			Secondary:  c.Secondary,
			Accent:     c.Accent,
			Background: c.Background,
			Surface:    c.Surface,
			Text:       c.Text,
			Muted:      c.Muted,
			Highlight:  base.Highlight,
			Error:      c.Error,
			Success:    c.Success,
			Glamour:    base.Glamour,
		}
	}
	if t, ok := r.Get(cfg.UI.Theme); ok {
		return t
	}
	t, _ := r.Get("dusk")
	return t
}

// LoadTheme resolves the theme for cfg and applies it to the package styles.
func LoadTheme(cfg *config.Config) Theme {
	r, err := NewThemeRegistry()
	if err != nil {
		return currentTheme
	}
	t := r.Resolve(cfg)
	ApplyTheme(t)
	return t
}
