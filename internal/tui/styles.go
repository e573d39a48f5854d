package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorIndigo = lipgloss.Color("#6366F1")
	colorRed    = lipgloss.Color("#EF4444")
	colorText   = lipgloss.Color("#E2E8F0")
	colorMuted  = lipgloss.Color("#64748B")
	colorDim    = lipgloss.Color("#334155")
	colorCyan   = lipgloss.Color("#22D3EE")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorYellow = lipgloss.Color("#FACC15")
	colorBlue   = lipgloss.Color("#1D4ED8")
)

// Styles groups the lipgloss styles used by the views
type Styles struct {
	Brand       lipgloss.Style
	Title       lipgloss.Style
	TitleYear   lipgloss.Style
	WeekdayHead lipgloss.Style
	SundayHead  lipgloss.Style

	Cell        lipgloss.Style
	CellOutside lipgloss.Style
	DayNumber   lipgloss.Style
	DayHoliday  lipgloss.Style
	DayToday    lipgloss.Style
	DayOutside  lipgloss.Style
	HolidayName lipgloss.Style
	Pattern     lipgloss.Style

	Tile       lipgloss.Style
	TileCursor lipgloss.Style
	TileTitle  lipgloss.Style
	TileNow    lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Badge      lipgloss.Style

	Card      lipgloss.Style
	CardLabel lipgloss.Style
	Quote     lipgloss.Style

	Help   lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles returns the dark slate palette
func NewStyles() *Styles {
	return &Styles{
		Brand:       lipgloss.NewStyle().Foreground(colorIndigo).Bold(true),
		Title:       lipgloss.NewStyle().Foreground(colorWhite).Bold(true),
		TitleYear:   lipgloss.NewStyle().Foreground(colorMuted),
		WeekdayHead: lipgloss.NewStyle().Foreground(colorMuted).Bold(true).Align(lipgloss.Center),
		SundayHead:  lipgloss.NewStyle().Foreground(colorRed).Bold(true).Align(lipgloss.Center),

		Cell:        lipgloss.NewStyle().Padding(0, 1),
		CellOutside: lipgloss.NewStyle().Padding(0, 1).Faint(true),
		DayNumber:   lipgloss.NewStyle().Foreground(colorText).Bold(true),
		DayHoliday:  lipgloss.NewStyle().Foreground(colorWhite).Background(colorRed).Bold(true),
		DayToday:    lipgloss.NewStyle().Foreground(colorWhite).Background(colorIndigo).Bold(true),
		DayOutside:  lipgloss.NewStyle().Foreground(colorDim),
		HolidayName: lipgloss.NewStyle().Foreground(colorRed),
		Pattern:     lipgloss.NewStyle().Foreground(colorCyan).Faint(true),

		Tile:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1),
		TileCursor: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorIndigo).Padding(0, 1),
		TileTitle:  lipgloss.NewStyle().Foreground(colorText).Bold(true),
		TileNow:    lipgloss.NewStyle().Foreground(colorIndigo).Bold(true),

		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorRed).Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Foreground(colorWhite).Bold(true),
		Badge:      lipgloss.NewStyle().Foreground(colorWhite).Background(colorRed).Bold(true).Padding(0, 1),

		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 2),
		CardLabel: lipgloss.NewStyle().Foreground(colorIndigo).Bold(true),
		Quote:     lipgloss.NewStyle().Foreground(colorText).Italic(true),

		Help:   lipgloss.NewStyle().Foreground(colorMuted),
		Footer: lipgloss.NewStyle().Foreground(colorDim).Bold(true),
	}
}

// flag renders the small yellow/blue/red stripe next to the brand
func flag() string {
	return lipgloss.NewStyle().Foreground(colorYellow).Render("▀") +
		lipgloss.NewStyle().Foreground(colorBlue).Render("▀") +
		lipgloss.NewStyle().Foreground(colorRed).Render("▀")
}
