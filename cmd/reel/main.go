package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/reel/internal/catalog"
	"github.com/pders01/reel/internal/config"
	"github.com/pders01/reel/internal/debuglog"
	"github.com/pders01/reel/internal/paging"
	"github.com/pders01/reel/internal/search"
	"github.com/pders01/reel/internal/storage"
	"github.com/pders01/reel/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	// Global flags
	configPath string
	dbPath     string
	logLevel   string
	offline    bool
	quiet      bool

	// list flags
	listQuery  string
	listGenres []string
	listPages  int
	listWidth  int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "reel - terminal movie browser",
	Long: `reel loads a public movie dataset once and lets you browse it in the terminal.

Type to filter by title, pick genres to narrow the list, and load more rows
as you scroll. Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsConfig(cmd) {
			return nil
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			loaded.Database.Path = config.ExpandPath(dbPath)
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		cfg = loaded

		if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		debuglog.Debugf("reel %s starting, source=%s offline=%t", Version, cfg.Source.URL, offline)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = debuglog.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser(cmd)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered movie table",
	Long: `Loads the collection, applies the title query and genre selection, and
prints as many pages as requested.

Example:
  reel list --query alien --genre Horror --genre "Science Fiction" --pages 2`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Print every genre found in the collection",
	Args:  cobra.NoArgs,
	RunE:  runGenres,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reel %s\n", Version)
		fmt.Println("Movie browser")
		fmt.Println("github.com/pders01/reel")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configGenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		configFile := config.DefaultPath()
		if err := config.GenerateDefaultConfig(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to snapshot database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Browse the last saved snapshot instead of fetching")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Skip startup banner")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off")

	listCmd.Flags().StringVar(&listQuery, "query", "", "Case-insensitive title filter")
	listCmd.Flags().StringArrayVar(&listGenres, "genre", nil, "Genre to include (repeatable, any match)")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "Number of pages to print")
	listCmd.Flags().IntVar(&listWidth, "width", 0, "Table width (0 sizes to content)")

	configCmd.AddCommand(configGenCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func skipsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == versionCmd || c == configCmd {
			return true
		}
	}
	return false
}

// openLoader returns a loader backed by the snapshot store. The store may be
// nil when the database cannot be opened; browsing still works online.
func openLoader() (*catalog.Loader, func(), error) {
	store, err := storage.NewStoreWithTimeout(cfg.Database.Path, cfg.Database.Timeout)
	if err != nil {
		if offline {
			return nil, nil, err
		}
		debuglog.Warnf("snapshot store unavailable: %v", err)
		return catalog.NewLoader(cfg), func() {}, nil
	}

	loader := catalog.NewLoader(cfg,
		catalog.WithSnapshotStore(store),
		catalog.WithOffline(offline),
	)
	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil {
			debuglog.Warnf("closing store: %v", closeErr)
		}
	}
	return loader, cleanup, nil
}

func runBrowser(cmd *cobra.Command) error {
	if !quiet {
		tui.ShowBanner(cmd.OutOrStdout(), Version)
	}

	loader, cleanup, err := openLoader()
	if err != nil {
		return err
	}
	defer cleanup()

	app := tui.NewApp(loader, cfg)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	loader, cleanup, err := openLoader()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return loader.Load(ctx)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	tui.LoadTheme(cfg)
	engine := search.NewEngine(c.Movies)
	filtered := engine.Results(search.FilterState{
		Query:  listQuery,
		Genres: search.NewGenreSet(listGenres...),
	})

	pager := paging.New(cfg.UI.PageSize)
	for i := 1; i < listPages; i++ {
		pager.LoadMore()
	}
	shown := paging.Page(filtered, pager)

	out := cmd.OutOrStdout()
	if len(filtered) == 0 {
		fmt.Fprintln(out, "No movies match the current filters.")
		return nil
	}
	fmt.Fprintln(out, tui.RenderMovieTable(shown, listWidth))
	if pager.HasMore(len(filtered)) {
		fmt.Fprintln(out, tui.LoadMoreHint(len(shown), len(filtered)))
	}
	return nil
}

func runGenres(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(c.Genres, "\n"))
	return nil
}
