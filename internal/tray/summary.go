package tray

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/calendario/internal/calendar"
	"github.com/username/calendario/pkg/dateutil"
)

// Status is what the tray icon shows for one day
type Status struct {
	Date    string // YYYY-MM-DD
	Title   string
	Tooltip string
}

// Summary describes the given day: its pattern value and, when it has one, the holiday name
func Summary(now time.Time, holidays calendar.Holidays) Status {
	pattern := calendar.PatternValue(now)

	name, named := "", false
	if holidays != nil {
		name, named = holidays.Lookup(now)
	}

	title := fmt.Sprintf("%d", pattern)
	if named {
		title += " · " + name
	}

	lines := []string{
		fmt.Sprintf("%s %d %s %d",
			calendar.WeekdayLabel(now.Weekday()),
			now.Day(),
			calendar.ShortMonthName(now.Month()),
			now.Year()),
		fmt.Sprintf("Patrón: %d", pattern),
	}
	switch {
	case named:
		lines = append(lines, "Festivo: "+name)
	case dateutil.IsSunday(now):
		lines = append(lines, "Domingo")
	}

	return Status{
		Date:    dateutil.DateKey(now),
		Title:   title,
		Tooltip: strings.Join(lines, "\n"),
	}
}
