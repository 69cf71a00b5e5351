// Package themes defines the visual styles for the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Italic        lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Header        lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
	Info          lipgloss.Color
}

// Default is the default theme: greens for the crop domain, blue for
// weather accents.
var Default = Theme{
	// Colors
	Primary:   lipgloss.Color("#16a34a"),
	Secondary: lipgloss.Color("#4ade80"),
	Success:   lipgloss.Color("#10b981"),
	Warning:   lipgloss.Color("#f59e0b"),
	Error:     lipgloss.Color("#ef4444"),
	Info:      lipgloss.Color("#3b82f6"),
	Border:    lipgloss.Color("#404040"),
	Muted:     lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#fafafa")),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#16a34a")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	Header: lipgloss.NewStyle().
		Background(lipgloss.Color("#166534")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true).
		Padding(0, 1),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// Monsoon is an alternative palette with blue primaries.
var Monsoon = Theme{
	Primary:   lipgloss.Color("#0ea5e9"),
	Secondary: lipgloss.Color("#7dd3fc"),
	Success:   lipgloss.Color("#10b981"),
	Warning:   lipgloss.Color("#f59e0b"),
	Error:     lipgloss.Color("#f43f5e"),
	Info:      lipgloss.Color("#38bdf8"),
	Border:    lipgloss.Color("#334155"),
	Muted:     lipgloss.Color("#64748b"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e2e8f0")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e2e8f0")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e2e8f0")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#e2e8f0")),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#0ea5e9")).
		Foreground(lipgloss.Color("#0f172a")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#334155")).
		Foreground(lipgloss.Color("#e2e8f0")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(1, 2),
	Header: lipgloss.NewStyle().
		Background(lipgloss.Color("#075985")).
		Foreground(lipgloss.Color("#e2e8f0")).
		Bold(true).
		Padding(0, 1),

	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f43f5e")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#38bdf8")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "monsoon":
		return Monsoon
	default:
		return Default
	}
}

// WeatherIcons maps OpenWeather "main" conditions to emoji icons.
var WeatherIcons = map[string]string{
	"Rain":         "🌧️",
	"Clouds":       "☁️",
	"Clear":        "☀️",
	"Drizzle":      "🌦️",
	"Thunderstorm": "⛈️",
}

// GetWeatherIcon returns an icon for a weather condition.
func GetWeatherIcon(main string) string {
	if icon, ok := WeatherIcons[main]; ok {
		return icon
	}
	return "🌤️"
}
