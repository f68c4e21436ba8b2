package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// Theme names accepted by display.theme.
const (
	NameDefault = "default"
	NamePlain   = "plain"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// Apply selects the color profile for a theme name. "plain" strips all
// colors; anything else keeps the terminal's detected profile.
func Apply(name string) {
	if name == NamePlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HeaderStyle is used for trip titles and section headers.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// SectionStyle titles a city or a calendar day.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// PanelStyle wraps a block of related lines.
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ItemStyle indents one entry of a list.
var ItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// MutedStyle is used for secondary details such as dates and notes.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// LabelStyle renders field labels in key/value listings.
var LabelStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Width(12)

// OverBudgetStyle flags a negative remaining budget.
var OverBudgetStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// UnderBudgetStyle renders a non-negative remaining budget.
var UnderBudgetStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// TripStatusStyle returns a color-coded badge style for a trip status.
func TripStatusStyle(status model.TripStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.TripStatusUpcoming:
		return base.Foreground(ColorBlue)
	case model.TripStatusOngoing:
		return base.Foreground(ColorYellow)
	case model.TripStatusCompleted:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// CategoryStyle returns a color-coded label style for an activity category.
func CategoryStyle(c model.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch c {
	case model.CategorySightseeing:
		return base.Foreground(ColorMagenta)
	case model.CategoryFood:
		return base.Foreground(ColorOrange)
	case model.CategoryTravel:
		return base.Foreground(ColorBlue)
	case model.CategoryStay:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// ShareStyle returns the badge style for a trip's sharing state.
func ShareStyle(public bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if public {
		return base.Foreground(ColorGreen)
	}
	return base.Foreground(ColorGray)
}
