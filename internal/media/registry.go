package media

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed openers.toml
var openersTOML []byte

// Kind is what a URL points at.
type Kind int

const (
	KindPage Kind = iota
	KindImage
)

func (k Kind) String() string {
	if k == KindImage {
		return "image"
	}
	return "page"
}

// OpenerDefinition describes how an external program is invoked.
type OpenerDefinition struct {
	Description string   `toml:"description"`
	Args        []string `toml:"args,omitempty"`
}

// PlatformOpeners lists candidate programs per kind in preference order.
type PlatformOpeners struct {
	Page  []string `toml:"page"`
	Image []string `toml:"image"`
}

type ImageRules struct {
	Extensions  []string `toml:"extensions"`
	URLPatterns []string `toml:"url_patterns"`
}

// OpenersConfig is the shape of openers.toml.
type OpenersConfig struct {
	Platforms map[string]PlatformOpeners  `toml:"platforms"`
	Openers   map[string]OpenerDefinition `toml:"openers"`
	Image     ImageRules                  `toml:"image"`
}

// Registry resolves which program opens a URL on a platform.
type Registry struct {
	config OpenersConfig
}

// NewRegistry parses the embedded definitions and merges the user's
// ~/.config/reel/openers.toml over them when present.
func NewRegistry() (*Registry, error) {
	r, err := parseRegistry(openersTOML)
	if err != nil {
		return nil, err
	}
	if home, err := os.UserHomeDir(); err == nil {
		r.mergeFile(filepath.Join(home, ".config", "reel", "openers.toml"))
	}
	return r, nil
}

func parseRegistry(data []byte) (*Registry, error) {
	var cfg OpenersConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing openers.toml: %w", err)
	}
	if cfg.Platforms == nil {
		cfg.Platforms = map[string]PlatformOpeners{}
	}
	if cfg.Openers == nil {
		cfg.Openers = map[string]OpenerDefinition{}
	}
	return &Registry{config: cfg}, nil
}

func (r *Registry) mergeFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	user, err := parseRegistry(data)
	if err != nil {
		return
	}
	r.merge(user)
}

// merge overrides entries with those of other.
func (r *Registry) merge(other *Registry) {
	for name, p := range other.config.Platforms {
		r.config.Platforms[name] = p
	}
	for name, def := range other.config.Openers {
		r.config.Openers[name] = def
	}
	if len(other.config.Image.Extensions) > 0 {
		r.config.Image.Extensions = other.config.Image.Extensions
	}
	if len(other.config.Image.URLPatterns) > 0 {
		r.config.Image.URLPatterns = other.config.Image.URLPatterns
	}
}

// Candidates returns the programs to try for kind on goos.
func (r *Registry) Candidates(goos string, kind Kind) []string {
	p, ok := r.config.Platforms[goos]
	if !ok {
		return nil
	}
	if kind == KindImage && len(p.Image) > 0 {
		return p.Image
	}
	return p.Page
}

// Args builds the argument list for program opening url.
func (r *Registry) Args(program, url string) []string {
	def := r.config.Openers[program]
	args := make([]string, 0, len(def.Args)+1)
	args = append(args, def.Args...)
	return append(args, url)
}

// DetectKind classifies url by extension or host pattern.
func (r *Registry) DetectKind(url string) Kind {
	lower := strings.ToLower(url)

	ext := ""
	if idx := strings.LastIndex(lower, "."); idx != -1 {
		ext = lower[idx+1:]
		if i := strings.IndexAny(ext, "?#"); i != -1 {
			ext = ext[:i]
		}
	}
	for _, e := range r.config.Image.Extensions {
		if e == ext {
			return KindImage
		}
	}
	for _, p := range r.config.Image.URLPatterns {
		if strings.Contains(lower, p) {
			return KindImage
		}
	}
	return KindPage
}
