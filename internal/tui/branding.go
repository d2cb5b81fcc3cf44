package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const AppName = "reel"

// LogoLines is the canonical logo.
var LogoLines = []string{
	"█▀▀▄ █▀▀▀ █▀▀▀ █   ",
	"█▄▄▀ █▀▀  █▀▀  █   ",
	"█  █ █▄▄▄ █▄▄▄ █▄▄▄",
}

const CompactLogo = `reel ›`

var currentTheme = Theme{
	Name:       "dusk",
	Primary:    "#FF6B6B",
	Secondary:  "#4ECDC4",
	Accent:     "#95E1D3",
	Background: "#1A1A2E",
	Surface:    "#16213E",
	Text:       "#EAEAEA",
	Muted:      "#94A3B8",
	Highlight:  "#FFE66D",
	Error:      "#EF4444",
	Success:    "#10B981",
	Glamour:    "dark",
}

var (
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	SurfaceColor    lipgloss.Color
	TextColor       lipgloss.Color
	MutedColor      lipgloss.Color
	HighlightColor  lipgloss.Color
	ErrorColor      lipgloss.Color
	SuccessColor    lipgloss.Color

	// BannerColors cycles over the banner lines
	BannerColors []lipgloss.Color
)

var (
	LogoStyle          lipgloss.Style
	TitleStyle         lipgloss.Style
	HeaderStyle        lipgloss.Style
	StatusBarStyle     lipgloss.Style
	SelectedItemStyle  lipgloss.Style
	HelpStyle          lipgloss.Style
	SeparatorStyle     lipgloss.Style
	LoadMoreStyle      lipgloss.Style
	CheckedStyle       lipgloss.Style
	StatusInfoStyle    lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusWarnStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	EmptyStyle         = lipgloss.NewStyle()
)

func init() {
	ApplyTheme(currentTheme)
}

// ApplyTheme rebuilds the package colors and styles from t.
func ApplyTheme(t Theme) {
	currentTheme = t

	PrimaryColor = lipgloss.Color(t.Primary)
	SecondaryColor = lipgloss.Color(t.Secondary)
	AccentColor = lipgloss.Color(t.Accent)
	BackgroundColor = lipgloss.Color(t.Background)
	SurfaceColor = lipgloss.Color(t.Surface)
	TextColor = lipgloss.Color(t.Text)
	MutedColor = lipgloss.Color(t.Muted)
	HighlightColor = lipgloss.Color(t.Highlight)
	ErrorColor = lipgloss.Color(t.Error)
	SuccessColor = lipgloss.Color(t.Success)

	BannerColors = []lipgloss.Color{PrimaryColor, HighlightColor, AccentColor, SecondaryColor, PrimaryColor}

	LogoStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Bold(true).
		Padding(0, 2)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(BackgroundColor).
		Background(AccentColor).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	SeparatorStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	LoadMoreStyle = lipgloss.NewStyle().
		Foreground(BackgroundColor).
		Background(SecondaryColor).
		Bold(true).
		Padding(0, 2)

	CheckedStyle = lipgloss.NewStyle().
		Foreground(HighlightColor).
		Bold(true)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessColor)

	StatusWarnStyle = lipgloss.NewStyle().
		Foreground(HighlightColor)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
}

// ContentWrapper returns a style for wrapping content with width and height constraints
func ContentWrapper(width, height int) lipgloss.Style {
	return EmptyStyle.Width(width).Height(height).MaxHeight(height)
}

func GetWelcomeMessage() string {
	return GetCompactBanner("Fetching movies…")
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

// ShowBanner writes the startup banner to w.
func ShowBanner(w io.Writer, version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("  Movie Browser %s", versionTag))
	} else {
		lines = append(lines, "  Movie Browser")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))
		coloredLines = append(coloredLines, style.Render(line))
	}

	borderChars := lipgloss.Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}

	borderStyle := lipgloss.NewStyle().
		Border(borderChars).
		BorderForeground(SecondaryColor).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	fmt.Fprintln(w, lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		Render(borderStyle.Render(banner)))

	separator := lipgloss.NewStyle().
		Foreground(AccentColor).
		Render("▪ ▫ ▪ ▫ ▪")

	fmt.Fprintln(w, lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(separator))
}
