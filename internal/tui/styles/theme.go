// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour, used for prices and the focused card.
	Primary lipgloss.Color

	// PrimarySoft backs icon badges.
	PrimarySoft lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for descriptions and secondary text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Danger highlights destructive actions such as removing a line.
	Danger lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:     lipgloss.Color("#2563EB"), // Blue
		PrimarySoft: lipgloss.Color("#DBEAFE"), // Light blue
		Foreground:  lipgloss.Color("#E5E7EB"), // Light gray
		Muted:       lipgloss.Color("#9CA3AF"), // Medium gray
		Success:     lipgloss.Color("#22C55E"), // Green
		Danger:      lipgloss.Color("#DC2626"), // Red
		Border:      lipgloss.Color("#4B5563"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the app header.
	Title lipgloss.Style

	// Subtitle style for the header tagline.
	Subtitle lipgloss.Style

	// Heading style for pane headings.
	Heading lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Price style for amounts.
	Price lipgloss.Style

	// Card style for a catalog card.
	Card lipgloss.Style

	// FocusedCard style for the card under the cursor.
	FocusedCard lipgloss.Style

	// Icon style for the icon badge on cards.
	Icon lipgloss.Style

	// Line style for an order summary line.
	Line lipgloss.Style

	// FocusedLine style for the summary line under the cursor.
	FocusedLine lipgloss.Style

	// Panel style for the order summary container.
	Panel lipgloss.Style

	// Button style for call-to-action labels.
	Button lipgloss.Style

	// Success style for confirmations.
	Success lipgloss.Style

	// Danger style for removal hints.
	Danger lipgloss.Style

	// Modal style for the order acknowledgment.
	Modal lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Price: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Card: card,

		FocusedCard: card.
			BorderForeground(theme.Primary),

		Icon: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.PrimarySoft).
			Padding(0, 1),

		Line: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		FocusedLine: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(theme.Primary).
			Padding(0, 2),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Danger: lipgloss.NewStyle().
			Foreground(theme.Danger),

		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Success).
			Padding(1, 3),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
