package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://raw.githubusercontent.com/prust/wikipedia-movie-data/master/movies.json"

type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Keys     KeyConfig      `mapstructure:"keys"`
	Log      LogConfig      `mapstructure:"log"`
}

type SourceConfig struct {
	URL         string        `mapstructure:"url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	// AllowLocal permits localhost and private addresses, for local mirrors of the dataset.
	AllowLocal bool `mapstructure:"allow_local"`
}

type DatabaseConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type UIConfig struct {
	Theme             string        `mapstructure:"theme"`
	Colors            UIColors      `mapstructure:"colors"`
	PageSize          int           `mapstructure:"page_size"`
	SearchDebounce    time.Duration `mapstructure:"search_debounce"`
	ResetPageOnFilter bool          `mapstructure:"reset_page_on_filter"`
	Detail            DetailConfig  `mapstructure:"detail"`
	// Opener, when set, opens every URL instead of the platform default.
	Opener string `mapstructure:"opener"`
}

type UIColors struct {
	Primary    string `mapstructure:"primary"`
	Secondary  string `mapstructure:"secondary"`
	Accent     string `mapstructure:"accent"`
	Background string `mapstructure:"background"`
	Surface    string `mapstructure:"surface"`
	Text       string `mapstructure:"text"`
	Muted      string `mapstructure:"muted"`
	Error      string `mapstructure:"error"`
	Success    string `mapstructure:"success"`
}

type DetailConfig struct {
	WordWrapMaxWidth int `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int `mapstructure:"word_wrap_min_width"`
}

type KeyConfig struct {
	Modifier string      `mapstructure:"modifier"`
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit         string `mapstructure:"quit"`
	Search       string `mapstructure:"search"`
	Genres       string `mapstructure:"genres"`
	LoadMore     string `mapstructure:"load_more"`
	ClearFilters string `mapstructure:"clear_filters"`
	Back         string `mapstructure:"back"`
	Help         string `mapstructure:"help"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".reel.db")
	logPath := filepath.Join(homeDir, ".reel", "reel.log")

	return &Config{
		Source: SourceConfig{
			URL:         DefaultSourceURL,
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "reel/1.0 (https://github.com/pders01/reel)",
		},
		Database: DatabaseConfig{
			Path:    dbPath,
			Timeout: 1 * time.Second,
		},
		UI: UIConfig{
			Theme: "dusk",
			Colors: UIColors{
				Primary:    "#FF6B6B",
				Secondary:  "#4ECDC4",
				Accent:     "#95E1D3",
				Background: "#1A1A2E",
				Surface:    "#16213E",
				Text:       "#EAEAEA",
				Muted:      "#94A3B8",
				Error:      "#F87171",
				Success:    "#4ADE80",
			},
			PageSize:       50,
			SearchDebounce: 300 * time.Millisecond,
			Detail: DetailConfig{
				WordWrapMaxWidth: 120,
				WordWrapMinWidth: 40,
			},
		},
		Keys: KeyConfig{
			Modifier: "ctrl",
			Bindings: KeyBindings{
				Quit:         "q",
				Search:       "s",
				Genres:       "g",
				LoadMore:     "n",
				ClearFilters: "r",
				Back:         "esc",
				Help:         "?",
			},
		},
		Log: LogConfig{
			Level: "off",
			File:  logPath,
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	setDefaults(v, cfg)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "reel")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("REEL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.UI.PageSize <= 0 {
		config.UI.PageSize = cfg.UI.PageSize
	}
	if config.UI.SearchDebounce <= 0 {
		config.UI.SearchDebounce = cfg.UI.SearchDebounce
	}

	expandPaths(&config)

	return &config, nil
}

// setDefaults registers leaf keys so a partial section in the file
// keeps the defaults of its siblings.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.http_timeout", cfg.Source.HTTPTimeout)
	v.SetDefault("source.user_agent", cfg.Source.UserAgent)
	v.SetDefault("source.allow_local", cfg.Source.AllowLocal)

	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("database.timeout", cfg.Database.Timeout)

	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.colors.primary", cfg.UI.Colors.Primary)
	v.SetDefault("ui.colors.secondary", cfg.UI.Colors.Secondary)
	v.SetDefault("ui.colors.accent", cfg.UI.Colors.Accent)
	v.SetDefault("ui.colors.background", cfg.UI.Colors.Background)
	v.SetDefault("ui.colors.surface", cfg.UI.Colors.Surface)
	v.SetDefault("ui.colors.text", cfg.UI.Colors.Text)
	v.SetDefault("ui.colors.muted", cfg.UI.Colors.Muted)
	v.SetDefault("ui.colors.error", cfg.UI.Colors.Error)
	v.SetDefault("ui.colors.success", cfg.UI.Colors.Success)
	v.SetDefault("ui.page_size", cfg.UI.PageSize)
	v.SetDefault("ui.search_debounce", cfg.UI.SearchDebounce)
	v.SetDefault("ui.reset_page_on_filter", cfg.UI.ResetPageOnFilter)
	v.SetDefault("ui.detail.word_wrap_max_width", cfg.UI.Detail.WordWrapMaxWidth)
	v.SetDefault("ui.detail.word_wrap_min_width", cfg.UI.Detail.WordWrapMinWidth)
	v.SetDefault("ui.opener", cfg.UI.Opener)

	v.SetDefault("keys.modifier", cfg.Keys.Modifier)
	v.SetDefault("keys.bindings.quit", cfg.Keys.Bindings.Quit)
	v.SetDefault("keys.bindings.search", cfg.Keys.Bindings.Search)
	v.SetDefault("keys.bindings.genres", cfg.Keys.Bindings.Genres)
	v.SetDefault("keys.bindings.load_more", cfg.Keys.Bindings.LoadMore)
	v.SetDefault("keys.bindings.clear_filters", cfg.Keys.Bindings.ClearFilters)
	v.SetDefault("keys.bindings.back", cfg.Keys.Bindings.Back)
	v.SetDefault("keys.bindings.help", cfg.Keys.Bindings.Help)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

// ExpandPath is exported for flag overrides applied after Load.
func ExpandPath(path string) string {
	return expandPath(path)
}

func expandPaths(cfg *Config) {
	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.Log.File = expandPath(cfg.Log.File)
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Durations are written as strings for TOML readability
	sourceCfg := map[string]interface{}{
		"url":          config.Source.URL,
		"http_timeout": config.Source.HTTPTimeout.String(),
		"user_agent":   config.Source.UserAgent,
		"allow_local":  config.Source.AllowLocal,
	}

	dbCfg := map[string]interface{}{
		"path":    config.Database.Path,
		"timeout": config.Database.Timeout.String(),
	}

	colors := config.UI.Colors
	uiCfg := map[string]interface{}{
		"theme":                config.UI.Theme,
		"page_size":            config.UI.PageSize,
		"search_debounce":      config.UI.SearchDebounce.String(),
		"reset_page_on_filter": config.UI.ResetPageOnFilter,
		"opener":               config.UI.Opener,
		"colors": map[string]interface{}{
			"primary":    colors.Primary,
			"secondary":  colors.Secondary,
			"accent":     colors.Accent,
			"background": colors.Background,
			"surface":    colors.Surface,
			"text":       colors.Text,
			"muted":      colors.Muted,
			"error":      colors.Error,
			"success":    colors.Success,
		},
		"detail": map[string]interface{}{
			"word_wrap_max_width": config.UI.Detail.WordWrapMaxWidth,
			"word_wrap_min_width": config.UI.Detail.WordWrapMinWidth,
		},
	}

	b := config.Keys.Bindings
	keysCfg := map[string]interface{}{
		"modifier": config.Keys.Modifier,
		"bindings": map[string]interface{}{
			"quit":          b.Quit,
			"search":        b.Search,
			"genres":        b.Genres,
			"load_more":     b.LoadMore,
			"clear_filters": b.ClearFilters,
			"back":          b.Back,
			"help":          b.Help,
		},
	}

	logCfg := map[string]interface{}{
		"level": config.Log.Level,
		"file":  config.Log.File,
	}

	v.Set("source", sourceCfg)
	v.Set("database", dbCfg)
	v.Set("ui", uiCfg)
	v.Set("keys", keysCfg)
	v.Set("log", logCfg)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}

// DefaultPath returns the location Load searches first when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "reel", "config.toml")
}
