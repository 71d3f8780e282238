package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent        = lipgloss.Color("#FFD700") // Gold: has-image marker
	colorMuted         = lipgloss.Color("#636363") // Gray: past days, hints
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray: labels
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white: future days
	colorBrightWhite   = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceBright = lipgloss.Color("#2A2A3C") // Lighter surface: cursor bg
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorBlue          = lipgloss.Color("#5B8DEF") // Blue: today
)

// Has-image marker drawn after the day number.
const iconHasImage = "•"

// Popup close control.
const iconClose = "✖"

// Status bar styles: visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorWhite)
)

// Month header styles.
var (
	styleMonthTitle = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleMonthArrow = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleWeekday = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Day cell styles, one per temporal class.
var (
	styleDayPast = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDayToday = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	styleDayFuture = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleDayCursor = lipgloss.NewStyle().
			Background(colorSurfaceBright).
			Underline(true)

	styleHasImage = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// Popup styles: rounded border, styled title.
var (
	stylePopupBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	stylePopupBorderDragging = stylePopupBorder.
					BorderForeground(colorAccent)

	stylePopupTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	stylePopupClose = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Bold(true)

	stylePopupPath = lipgloss.NewStyle().
			Foreground(colorWhite)

	stylePopupEmpty = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Italic(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
