package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/internal/view"
)

const (
	cellWidth     = 12
	holidayWidth  = cellWidth - 2
	tilesPerRow   = 4
	miniCellWidth = 3
)

var miniHeader = [7]string{"L", "M", "M", "J", "V", "S", "D"}

// View implements tea.Model
func (m *Model) View() string {
	if m.state.HolidaysOpen {
		modal := m.renderHolidays()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	var body string
	if m.state.Mode == view.ModeMonth {
		body = m.renderMonth()
	} else {
		body = m.renderYear()
	}

	sections := []string{m.renderHeader(), "", body}
	if card := m.renderInsight(); card != "" {
		sections = append(sections, "", card)
	}
	sections = append(sections, "", m.renderHelp(), m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	s := m.styles
	brand := flag() + " " + s.Brand.Render("CALENDARIO 2026")

	var title string
	if m.state.Mode == view.ModeYear {
		title = s.Title.Render(m.state.Title())
	} else {
		title = s.Title.Render(calendar.MonthName(m.state.Month())) + " " +
			s.TitleYear.Render(strconv.Itoa(m.state.Year()))
	}

	return brand + "   " + title
}

func (m *Model) renderMonth() string {
	s := m.styles
	grid := m.builder.MonthGrid(m.state.Year(), m.state.Month())

	head := make([]string, 0, 7)
	for i, label := range calendar.WeekdayLabels {
		style := s.WeekdayHead
		if i == 6 {
			style = s.SundayHead
		}
		head = append(head, style.Width(cellWidth).Render(strings.ToUpper(label)))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, head...)}
	for week := 0; week < calendar.GridSize/7; week++ {
		cells := make([]string, 0, 7)
		for _, day := range grid[week*7 : week*7+7] {
			cells = append(cells, m.renderCell(day))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCell(day calendar.Day) string {
	s := m.styles
	number := fmt.Sprintf("%2d", day.Date.Day())

	if !day.IsCurrentMonth {
		return s.CellOutside.Width(cellWidth).Render(s.DayOutside.Render(number) + "\n\n")
	}

	switch {
	case day.IsToday:
		number = s.DayToday.Render(number)
	case day.IsHoliday:
		number = s.DayHoliday.Render(number)
	default:
		number = s.DayNumber.Render(number)
	}

	name := ""
	if day.HolidayName != "" {
		name = s.HolidayName.Render(truncate(day.HolidayName, holidayWidth))
	}
	pattern := s.Pattern.Render(strconv.Itoa(calendar.PatternValue(day.Date)))

	return s.Cell.Width(cellWidth).Render(number + "\n" + name + "\n" + pattern)
}

func (m *Model) renderYear() string {
	now := m.builder.Now()
	grids := m.builder.YearGrids(m.state.Year())

	var rows []string
	for start := 0; start < len(grids); start += tilesPerRow {
		tiles := make([]string, 0, tilesPerRow)
		for i := start; i < start+tilesPerRow && i < len(grids); i++ {
			month := time.Month(i + 1)
			current := now.Year() == m.state.Year() && now.Month() == month
			tiles = append(tiles, m.renderTile(month, grids[i], current, month == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderTile(month time.Month, grid []calendar.Day, current, focused bool) string {
	s := m.styles

	titleStyle := s.TileTitle
	if current {
		titleStyle = s.TileNow
	}
	first := time.Date(m.state.Year(), month, 1, 0, 0, 0, 0, time.Local)
	title := titleStyle.Render(strings.ToUpper(calendar.MonthName(month))) + " " +
		s.Pattern.Render("·"+strconv.Itoa(calendar.PatternValue(first)))

	var head strings.Builder
	for i, initial := range miniHeader {
		style := s.WeekdayHead
		if i == 6 {
			style = s.SundayHead
		}
		head.WriteString(style.Width(miniCellWidth).Render(initial))
	}

	lines := []string{title, head.String()}
	for week := 0; week < calendar.GridSize/7; week++ {
		var line strings.Builder
		for _, day := range grid[week*7 : week*7+7] {
			line.WriteString(m.renderMiniCell(day))
		}
		lines = append(lines, line.String())
	}

	tile := s.Tile
	if focused {
		tile = s.TileCursor
	}
	return tile.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderMiniCell(day calendar.Day) string {
	s := m.styles
	if !day.IsCurrentMonth {
		return strings.Repeat(" ", miniCellWidth)
	}

	number := fmt.Sprintf("%2d", day.Date.Day())
	switch {
	case day.IsToday:
		number = s.DayToday.Render(number)
	case day.IsHoliday:
		number = s.HolidayName.Render(number)
	default:
		number = s.DayNumber.UnsetBold().Render(number)
	}
	return number + " "
}

func (m *Model) renderHolidays() string {
	s := m.styles
	holidays := m.builder.Holidays()

	lines := []string{
		s.ModalTitle.Render("Festivos Colombia 2026"),
		s.Help.Render("Calendario oficial de días festivos"),
		"",
	}
	if holidays != nil {
		for _, h := range holidays.List() {
			badge := s.Badge.Render(fmt.Sprintf("%2d %s", h.Date.Day(), strings.ToUpper(calendar.ShortMonthName(h.Date.Month()))))
			weekday := s.Help.Render(strings.ToUpper(calendar.WeekdayLabel(h.Date.Weekday())))
			lines = append(lines, badge+" "+s.Title.Render(h.Name)+" "+weekday)
		}
	}
	lines = append(lines, "", s.Help.Render("esc · Cerrar Ventana"))

	return s.Modal.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderInsight() string {
	s := m.styles
	if m.Loading() {
		return s.Card.Render(s.Help.Render("Cargando reflexión del mes..."))
	}
	if m.insight == nil {
		return ""
	}

	lines := []string{
		s.CardLabel.Render("ESTRATEGIA MENSUAL · " + strings.ToUpper(m.insightFor)),
		s.Quote.Render("\"" + m.insight.Quote + "\""),
		"",
		s.CardLabel.Render("Enfoque del Mes"),
		m.insight.Focus,
		"",
		s.CardLabel.Render("Dato Histórico"),
		m.insight.HistoricalNote,
	}
	card := s.Card
	if m.width > 4 {
		card = card.Width(m.width - 4)
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHelp() string {
	bindings := m.keys.monthHelp()
	if m.state.Mode == view.ModeYear {
		bindings = m.keys.yearHelp()
	}
	return m.styles.Help.Render(helpLine(bindings))
}

func (m *Model) renderFooter() string {
	return m.styles.Footer.Render("Nova Intelligence Systems © 2026") + "   " +
		m.styles.Footer.Render("Colombia Standard Time")
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// truncate shortens s to at most width runes, ending in an ellipsis when cut
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
