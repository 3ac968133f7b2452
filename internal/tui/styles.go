package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorYellow   = lipgloss.Color("#FFE81F")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorMuted    = lipgloss.Color("#777777")
	ColorBlue     = lipgloss.Color("#007BFF")
	ColorDisabled = lipgloss.Color("#CCCCCC")
	ColorCritical = lipgloss.Color("#FF4136")
	ColorCardText = lipgloss.Color("#333333")
	ColorCardSub  = lipgloss.Color("#555555")
	ColorCard     = lipgloss.Color("#FFFFFF")
	ColorFirst    = lipgloss.Color("#E0F7FA")
	ColorStar     = lipgloss.Color("#AAAAAA")
)

// Layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 24
	borderPadding = 2

	// cardHeight is the number of rows one character card occupies,
	// including the blank separator line.
	cardHeight = 4

	// chromeHeight is the number of rows used by everything but the list.
	chromeHeight = 16

	minListHeight = cardHeight
)

// Text styles.
//
//nolint:gochecknoglobals // Style definitions are package-level by convention in lipgloss.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorWhite)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Align(lipgloss.Center)

	CriticalStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true).
			Align(lipgloss.Center)

	StarStyle = lipgloss.NewStyle().Foreground(ColorStar)
)

// Control styles.
//
//nolint:gochecknoglobals // Style definitions are package-level by convention in lipgloss.
var (
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow).
			Padding(0, 1)

	SearchButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorYellow).
				Foreground(ColorYellow).
				Align(lipgloss.Center)

	PickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWhite).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Background(ColorBlue).
			Foreground(ColorWhite).
			Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Background(ColorDisabled).
				Foreground(ColorWhite).
				Padding(0, 2)
)

// Card styles.
//
//nolint:gochecknoglobals // Style definitions are package-level by convention in lipgloss.
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCard).
			Foreground(ColorCardText).
			Padding(0, 1)

	FirstCardStyle = CardStyle.Background(ColorFirst)

	CardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCardText)

	CardDetailStyle = lipgloss.NewStyle().Foreground(ColorCardSub)

	SelectedMarkerStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
)
