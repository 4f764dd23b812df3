package styles

import (
	"github.com/charmbracelet/lipgloss"

	"taskquest/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Rating colors
	RatingLowColor    = lipgloss.Color("#60A5FA") // Blue
	RatingMediumColor = Warning
	RatingHighColor   = Error

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Board rows
	TaskRow = lipgloss.NewStyle()

	TaskSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TaskDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	TaskOverdue = lipgloss.NewStyle().
			Foreground(Error)

	Deadline = lipgloss.NewStyle().
			Foreground(Secondary)

	Timer = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60A5FA")).
		Bold(true)

	Checkbox     = "[ ] "
	CheckboxDone = "[x] "

	// Stats header
	StatsBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	StatsLabel = lipgloss.NewStyle().
			Foreground(Muted)

	StatsValue = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	ChoiceArrow = lipgloss.NewStyle().
			Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Blocking notice shown until dismissed
	Notice = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Error).
		Foreground(Error).
		Padding(0, 1)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// RatingColor returns the color for an urgency or importance rating
func RatingColor(r domain.Rating) lipgloss.Color {
	switch r {
	case domain.RatingHigh:
		return RatingHighColor
	case domain.RatingMedium:
		return RatingMediumColor
	default:
		return RatingLowColor
	}
}

// Rating renders a rating in its color
func Rating(r domain.Rating) string {
	return lipgloss.NewStyle().Foreground(RatingColor(r)).Render(string(r))
}
